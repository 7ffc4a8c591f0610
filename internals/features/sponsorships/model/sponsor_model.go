package model

import (
	"time"
)

// SponsorModel is an organization profile. Independent entity; sponsorship
// records point at it with RESTRICT so history is protected.
type SponsorModel struct {
	SponsorID           int64     `gorm:"column:sponsor_id;primaryKey;autoIncrement" json:"sponsor_id"`
	SponsorName         string    `gorm:"column:sponsor_name;size:150;not null" json:"sponsor_name"`
	SponsorDescription  *string   `gorm:"column:sponsor_description;type:text" json:"sponsor_description,omitempty"`
	SponsorLogoURL      *string   `gorm:"column:sponsor_logo_url;size:255" json:"sponsor_logo_url,omitempty"`
	SponsorWebsiteURL   *string   `gorm:"column:sponsor_website_url;size:255" json:"sponsor_website_url,omitempty"`
	SponsorContactEmail *string   `gorm:"column:sponsor_contact_email;size:255" json:"sponsor_contact_email,omitempty"`
	SponsorContactPhone *string   `gorm:"column:sponsor_contact_phone;size:20" json:"sponsor_contact_phone,omitempty"`
	SponsorCreatedAt    time.Time `gorm:"column:sponsor_created_at;autoCreateTime" json:"sponsor_created_at"`
}

func (SponsorModel) TableName() string {
	return "sponsors"
}

package model

import (
	"time"
)

// VenueModel represents a physical location. Events reference venues, they
// don't own them, so nothing here is removed when events disappear.
type VenueModel struct {
	VenueID          int64     `gorm:"column:venue_id;primaryKey;autoIncrement" json:"venue_id"`
	VenueName        string    `gorm:"column:venue_name;size:150;not null" json:"venue_name"`
	VenueAddress     string    `gorm:"column:venue_address;size:255;not null" json:"venue_address"`
	VenueCity        string    `gorm:"column:venue_city;size:100;not null" json:"venue_city"`
	VenueState       *string   `gorm:"column:venue_state;size:100" json:"venue_state,omitempty"`
	VenueCountry     string    `gorm:"column:venue_country;size:100;not null" json:"venue_country"`
	VenuePostalCode  *string   `gorm:"column:venue_postal_code;size:20" json:"venue_postal_code,omitempty"`
	VenueCapacity    int       `gorm:"column:venue_capacity;not null;check:chk_venues_capacity,venue_capacity > 0" json:"venue_capacity"`
	VenueDescription *string   `gorm:"column:venue_description;type:text" json:"venue_description,omitempty"`
	VenueCreatedAt   time.Time `gorm:"column:venue_created_at;autoCreateTime" json:"venue_created_at"`
	VenueUpdatedAt   time.Time `gorm:"column:venue_updated_at;autoUpdateTime" json:"venue_updated_at"`
}

func (VenueModel) TableName() string {
	return "venues"
}

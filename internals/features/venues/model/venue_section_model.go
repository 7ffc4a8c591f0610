package model

import (
	"time"
)

// VenueSectionModel subdivides a venue. Owned by the venue: deleting the
// venue cascades here.
type VenueSectionModel struct {
	VenueSectionID        int64     `gorm:"column:venue_section_id;primaryKey;autoIncrement" json:"venue_section_id"`
	VenueSectionVenueID   int64     `gorm:"column:venue_section_venue_id;not null;index:idx_venue_sections_venue" json:"venue_section_venue_id"`
	VenueSectionName      string    `gorm:"column:venue_section_name;size:100;not null" json:"venue_section_name"`
	VenueSectionCapacity  int       `gorm:"column:venue_section_capacity;not null;check:chk_venue_sections_capacity,venue_section_capacity > 0" json:"venue_section_capacity"`
	VenueSectionCreatedAt time.Time `gorm:"column:venue_section_created_at;autoCreateTime" json:"venue_section_created_at"`

	Venue VenueModel `gorm:"foreignKey:VenueSectionVenueID;references:VenueID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"venue,omitempty"`
}

func (VenueSectionModel) TableName() string {
	return "venue_sections"
}

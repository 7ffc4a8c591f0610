package model

import (
	"time"

	"gorm.io/datatypes"

	UserModel "eventku_backend/internals/features/users/model"
	VenueModel "eventku_backend/internals/features/venues/model"
)

// EventModel is the central entity. Organizer, category and venue are weak
// references (RESTRICT): the event never owns them and their deletion is
// blocked while the event exists.
type EventModel struct {
	EventID int64 `gorm:"column:event_id;primaryKey;autoIncrement" json:"event_id"`

	EventOrganizerID int64  `gorm:"column:event_organizer_id;not null;index:idx_events_organizer" json:"event_organizer_id"`
	EventCategoryID  int64  `gorm:"column:event_category_id;not null;index:idx_events_category" json:"event_category_id"`
	EventVenueID     *int64 `gorm:"column:event_venue_id;index:idx_events_venue" json:"event_venue_id,omitempty"`

	EventTitle       string `gorm:"column:event_title;size:200;not null" json:"event_title"`
	EventDescription string `gorm:"column:event_description;type:text;not null" json:"event_description"`

	// end must be strictly after start, enforced in DDL and at the DTO layer.
	EventStartDatetime time.Time `gorm:"column:event_start_datetime;not null;index:idx_events_datetime,priority:1" json:"event_start_datetime"`
	EventEndDatetime   time.Time `gorm:"column:event_end_datetime;not null;index:idx_events_datetime,priority:2;check:chk_events_datetime,event_end_datetime > event_start_datetime" json:"event_end_datetime"`

	EventStatus string `gorm:"column:event_status;size:20;not null;default:'draft';index:idx_events_status;check:chk_events_status,event_status IN ('draft','published','cancelled','completed')" json:"event_status"`

	EventIsRecurring       bool           `gorm:"column:event_is_recurring;not null;default:false" json:"event_is_recurring"`
	EventRecurrencePattern datatypes.JSON `gorm:"column:event_recurrence_pattern;type:jsonb" json:"event_recurrence_pattern,omitempty"`
	EventImageURL          *string        `gorm:"column:event_image_url;size:255" json:"event_image_url,omitempty"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`

	Organizer UserModel.UserModel    `gorm:"foreignKey:EventOrganizerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"organizer,omitempty"`
	Category  EventCategoryModel     `gorm:"foreignKey:EventCategoryID;references:EventCategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category,omitempty"`
	Venue     *VenueModel.VenueModel `gorm:"foreignKey:EventVenueID;references:VenueID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"venue,omitempty"`
	Schedules []EventScheduleModel   `gorm:"foreignKey:EventScheduleEventID;references:EventID" json:"schedules,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}

package model

import (
	"time"

	EventModel "eventku_backend/internals/features/events/model"
	UserModel "eventku_backend/internals/features/users/model"
)

// RSVPModel is a user's response to an event. At most one row per
// (event, user); the unique index resolves concurrent duplicate submissions.
// Owned by the event (cascade); the user reference is weak.
type RSVPModel struct {
	RSVPID int64 `gorm:"column:rsvp_id;primaryKey;autoIncrement" json:"rsvp_id"`

	RSVPEventID int64 `gorm:"column:rsvp_event_id;not null;uniqueIndex:uq_rsvps_event_user,priority:1" json:"rsvp_event_id"`
	RSVPUserID  int64 `gorm:"column:rsvp_user_id;not null;uniqueIndex:uq_rsvps_event_user,priority:2;index:idx_rsvps_user" json:"rsvp_user_id"`

	RSVPResponse    string    `gorm:"column:rsvp_response;size:20;not null;check:chk_rsvps_response,rsvp_response IN ('confirmed','waitlisted','cancelled')" json:"rsvp_response"`
	RSVPGuestCount  int       `gorm:"column:rsvp_guest_count;not null;default:0;check:chk_rsvps_guest_count,rsvp_guest_count >= 0" json:"rsvp_guest_count"`
	RSVPNotes       *string   `gorm:"column:rsvp_notes;type:text" json:"rsvp_notes,omitempty"`
	RSVPRespondedAt time.Time `gorm:"column:rsvp_responded_at;autoCreateTime" json:"rsvp_responded_at"`

	Event EventModel.EventModel `gorm:"foreignKey:RSVPEventID;references:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"event,omitempty"`
	User  UserModel.UserModel   `gorm:"foreignKey:RSVPUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"user,omitempty"`
}

func (RSVPModel) TableName() string {
	return "rsvps"
}

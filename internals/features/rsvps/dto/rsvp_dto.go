package dto

import (
	"time"

	"eventku_backend/internals/features/rsvps/model"
)

type CreateRSVPRequest struct {
	RSVPUserID     int64   `json:"rsvp_user_id" validate:"required,gt=0"`
	RSVPResponse   string  `json:"rsvp_response" validate:"required,oneof=confirmed waitlisted cancelled"`
	RSVPGuestCount int     `json:"rsvp_guest_count" validate:"gte=0"`
	RSVPNotes      *string `json:"rsvp_notes"`
}

type UpdateRSVPRequest struct {
	RSVPResponse   *string `json:"rsvp_response" validate:"omitempty,oneof=confirmed waitlisted cancelled"`
	RSVPGuestCount *int    `json:"rsvp_guest_count" validate:"omitempty,gte=0"`
	RSVPNotes      *string `json:"rsvp_notes"`
}

type RSVPResponse struct {
	RSVPID          int64     `json:"rsvp_id"`
	RSVPEventID     int64     `json:"rsvp_event_id"`
	RSVPUserID      int64     `json:"rsvp_user_id"`
	RSVPResponse    string    `json:"rsvp_response"`
	RSVPGuestCount  int       `json:"rsvp_guest_count"`
	RSVPNotes       *string   `json:"rsvp_notes,omitempty"`
	RSVPRespondedAt time.Time `json:"rsvp_responded_at"`
}

func (r *CreateRSVPRequest) ToModel(eventID int64) *model.RSVPModel {
	return &model.RSVPModel{
		RSVPEventID:    eventID,
		RSVPUserID:     r.RSVPUserID,
		RSVPResponse:   r.RSVPResponse,
		RSVPGuestCount: r.RSVPGuestCount,
		RSVPNotes:      r.RSVPNotes,
	}
}

func (r *UpdateRSVPRequest) Apply(m *model.RSVPModel) {
	if r.RSVPResponse != nil {
		m.RSVPResponse = *r.RSVPResponse
	}
	if r.RSVPGuestCount != nil {
		m.RSVPGuestCount = *r.RSVPGuestCount
	}
	if r.RSVPNotes != nil {
		m.RSVPNotes = r.RSVPNotes
	}
}

func FromRSVPModel(m *model.RSVPModel) *RSVPResponse {
	return &RSVPResponse{
		RSVPID:          m.RSVPID,
		RSVPEventID:     m.RSVPEventID,
		RSVPUserID:      m.RSVPUserID,
		RSVPResponse:    m.RSVPResponse,
		RSVPGuestCount:  m.RSVPGuestCount,
		RSVPNotes:       m.RSVPNotes,
		RSVPRespondedAt: m.RSVPRespondedAt,
	}
}

func FromRSVPModels(models []model.RSVPModel) []RSVPResponse {
	out := make([]RSVPResponse, 0, len(models))
	for i := range models {
		out = append(out, *FromRSVPModel(&models[i]))
	}
	return out
}

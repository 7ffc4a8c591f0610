package dto

import (
	"time"

	"eventku_backend/internals/features/sponsorships/model"
)

type AttachSponsorRequest struct {
	EventSponsorSponsorID     int64   `json:"event_sponsor_sponsor_id" validate:"required,gt=0"`
	EventSponsorTierID        int64   `json:"event_sponsor_tier_id" validate:"required,gt=0"`
	EventSponsorAmount        float64 `json:"event_sponsor_amount" validate:"gte=0"`
	EventSponsorAgreementText *string `json:"event_sponsor_agreement_text"`
}

type UpdateEventSponsorRequest struct {
	EventSponsorTierID        *int64   `json:"event_sponsor_tier_id" validate:"omitempty,gt=0"`
	EventSponsorAmount        *float64 `json:"event_sponsor_amount" validate:"omitempty,gte=0"`
	EventSponsorAgreementText *string  `json:"event_sponsor_agreement_text"`
}

type EventSponsorResponse struct {
	EventSponsorEventID       int64     `json:"event_sponsor_event_id"`
	EventSponsorSponsorID     int64     `json:"event_sponsor_sponsor_id"`
	EventSponsorTierID        int64     `json:"event_sponsor_tier_id"`
	EventSponsorAmount        float64   `json:"event_sponsor_amount"`
	EventSponsorAgreementText *string   `json:"event_sponsor_agreement_text,omitempty"`
	EventSponsorCreatedAt     time.Time `json:"event_sponsor_created_at"`
	SponsorName               string    `json:"sponsor_name,omitempty"`
	TierName                  string    `json:"tier_name,omitempty"`
}

func (r *AttachSponsorRequest) ToModel(eventID int64) *model.EventSponsorModel {
	return &model.EventSponsorModel{
		EventSponsorEventID:       eventID,
		EventSponsorSponsorID:     r.EventSponsorSponsorID,
		EventSponsorTierID:        r.EventSponsorTierID,
		EventSponsorAmount:        r.EventSponsorAmount,
		EventSponsorAgreementText: r.EventSponsorAgreementText,
	}
}

func (r *UpdateEventSponsorRequest) Apply(m *model.EventSponsorModel) {
	if r.EventSponsorTierID != nil {
		m.EventSponsorTierID = *r.EventSponsorTierID
	}
	if r.EventSponsorAmount != nil {
		m.EventSponsorAmount = *r.EventSponsorAmount
	}
	if r.EventSponsorAgreementText != nil {
		m.EventSponsorAgreementText = r.EventSponsorAgreementText
	}
}

func FromEventSponsorModel(m *model.EventSponsorModel) *EventSponsorResponse {
	resp := &EventSponsorResponse{
		EventSponsorEventID:       m.EventSponsorEventID,
		EventSponsorSponsorID:     m.EventSponsorSponsorID,
		EventSponsorTierID:        m.EventSponsorTierID,
		EventSponsorAmount:        m.EventSponsorAmount,
		EventSponsorAgreementText: m.EventSponsorAgreementText,
		EventSponsorCreatedAt:     m.EventSponsorCreatedAt,
	}
	if m.Sponsor.SponsorID != 0 {
		resp.SponsorName = m.Sponsor.SponsorName
	}
	if m.Tier.SponsorshipTierID != 0 {
		resp.TierName = m.Tier.SponsorshipTierName
	}
	return resp
}

func FromEventSponsorModels(models []model.EventSponsorModel) []EventSponsorResponse {
	out := make([]EventSponsorResponse, 0, len(models))
	for i := range models {
		out = append(out, *FromEventSponsorModel(&models[i]))
	}
	return out
}

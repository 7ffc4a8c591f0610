package dto

import (
	"time"

	"eventku_backend/internals/features/venues/model"
)

type CreateVenueRequest struct {
	VenueName        string  `json:"venue_name" validate:"required,max=150"`
	VenueAddress     string  `json:"venue_address" validate:"required,max=255"`
	VenueCity        string  `json:"venue_city" validate:"required,max=100"`
	VenueState       *string `json:"venue_state" validate:"omitempty,max=100"`
	VenueCountry     string  `json:"venue_country" validate:"required,max=100"`
	VenuePostalCode  *string `json:"venue_postal_code" validate:"omitempty,max=20"`
	VenueCapacity    int     `json:"venue_capacity" validate:"required,gt=0"`
	VenueDescription *string `json:"venue_description"`
}

type UpdateVenueRequest struct {
	VenueName        *string `json:"venue_name" validate:"omitempty,max=150"`
	VenueAddress     *string `json:"venue_address" validate:"omitempty,max=255"`
	VenueCity        *string `json:"venue_city" validate:"omitempty,max=100"`
	VenueState       *string `json:"venue_state" validate:"omitempty,max=100"`
	VenueCountry     *string `json:"venue_country" validate:"omitempty,max=100"`
	VenuePostalCode  *string `json:"venue_postal_code" validate:"omitempty,max=20"`
	VenueCapacity    *int    `json:"venue_capacity" validate:"omitempty,gt=0"`
	VenueDescription *string `json:"venue_description"`
}

type VenueResponse struct {
	VenueID          int64     `json:"venue_id"`
	VenueName        string    `json:"venue_name"`
	VenueAddress     string    `json:"venue_address"`
	VenueCity        string    `json:"venue_city"`
	VenueState       *string   `json:"venue_state,omitempty"`
	VenueCountry     string    `json:"venue_country"`
	VenuePostalCode  *string   `json:"venue_postal_code,omitempty"`
	VenueCapacity    int       `json:"venue_capacity"`
	VenueDescription *string   `json:"venue_description,omitempty"`
	VenueCreatedAt   time.Time `json:"venue_created_at"`
	VenueUpdatedAt   time.Time `json:"venue_updated_at"`
}

func (r *CreateVenueRequest) ToModel() *model.VenueModel {
	return &model.VenueModel{
		VenueName:        r.VenueName,
		VenueAddress:     r.VenueAddress,
		VenueCity:        r.VenueCity,
		VenueState:       r.VenueState,
		VenueCountry:     r.VenueCountry,
		VenuePostalCode:  r.VenuePostalCode,
		VenueCapacity:    r.VenueCapacity,
		VenueDescription: r.VenueDescription,
	}
}

// Apply copies the provided fields onto the existing row.
func (r *UpdateVenueRequest) Apply(m *model.VenueModel) {
	if r.VenueName != nil {
		m.VenueName = *r.VenueName
	}
	if r.VenueAddress != nil {
		m.VenueAddress = *r.VenueAddress
	}
	if r.VenueCity != nil {
		m.VenueCity = *r.VenueCity
	}
	if r.VenueState != nil {
		m.VenueState = r.VenueState
	}
	if r.VenueCountry != nil {
		m.VenueCountry = *r.VenueCountry
	}
	if r.VenuePostalCode != nil {
		m.VenuePostalCode = r.VenuePostalCode
	}
	if r.VenueCapacity != nil {
		m.VenueCapacity = *r.VenueCapacity
	}
	if r.VenueDescription != nil {
		m.VenueDescription = r.VenueDescription
	}
}

func FromVenueModel(m *model.VenueModel) *VenueResponse {
	return &VenueResponse{
		VenueID:          m.VenueID,
		VenueName:        m.VenueName,
		VenueAddress:     m.VenueAddress,
		VenueCity:        m.VenueCity,
		VenueState:       m.VenueState,
		VenueCountry:     m.VenueCountry,
		VenuePostalCode:  m.VenuePostalCode,
		VenueCapacity:    m.VenueCapacity,
		VenueDescription: m.VenueDescription,
		VenueCreatedAt:   m.VenueCreatedAt,
		VenueUpdatedAt:   m.VenueUpdatedAt,
	}
}

func FromVenueModels(models []model.VenueModel) []VenueResponse {
	out := make([]VenueResponse, 0, len(models))
	for i := range models {
		out = append(out, *FromVenueModel(&models[i]))
	}
	return out
}

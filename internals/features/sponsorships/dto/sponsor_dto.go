package dto

import (
	"eventku_backend/internals/features/sponsorships/model"
)

type SponsorRequest struct {
	SponsorName         string  `json:"sponsor_name" validate:"required,max=150"`
	SponsorDescription  *string `json:"sponsor_description"`
	SponsorLogoURL      *string `json:"sponsor_logo_url" validate:"omitempty,max=255"`
	SponsorWebsiteURL   *string `json:"sponsor_website_url" validate:"omitempty,max=255"`
	SponsorContactEmail *string `json:"sponsor_contact_email" validate:"omitempty,email,max=255"`
	SponsorContactPhone *string `json:"sponsor_contact_phone" validate:"omitempty,max=20"`
}

type SponsorResponse struct {
	SponsorID           int64   `json:"sponsor_id"`
	SponsorName         string  `json:"sponsor_name"`
	SponsorDescription  *string `json:"sponsor_description,omitempty"`
	SponsorLogoURL      *string `json:"sponsor_logo_url,omitempty"`
	SponsorWebsiteURL   *string `json:"sponsor_website_url,omitempty"`
	SponsorContactEmail *string `json:"sponsor_contact_email,omitempty"`
	SponsorContactPhone *string `json:"sponsor_contact_phone,omitempty"`
}

func (r *SponsorRequest) ToModel() *model.SponsorModel {
	return &model.SponsorModel{
		SponsorName:         r.SponsorName,
		SponsorDescription:  r.SponsorDescription,
		SponsorLogoURL:      r.SponsorLogoURL,
		SponsorWebsiteURL:   r.SponsorWebsiteURL,
		SponsorContactEmail: r.SponsorContactEmail,
		SponsorContactPhone: r.SponsorContactPhone,
	}
}

func (r *SponsorRequest) Apply(m *model.SponsorModel) {
	m.SponsorName = r.SponsorName
	m.SponsorDescription = r.SponsorDescription
	m.SponsorLogoURL = r.SponsorLogoURL
	m.SponsorWebsiteURL = r.SponsorWebsiteURL
	m.SponsorContactEmail = r.SponsorContactEmail
	m.SponsorContactPhone = r.SponsorContactPhone
}

func FromSponsorModel(m *model.SponsorModel) *SponsorResponse {
	return &SponsorResponse{
		SponsorID:           m.SponsorID,
		SponsorName:         m.SponsorName,
		SponsorDescription:  m.SponsorDescription,
		SponsorLogoURL:      m.SponsorLogoURL,
		SponsorWebsiteURL:   m.SponsorWebsiteURL,
		SponsorContactEmail: m.SponsorContactEmail,
		SponsorContactPhone: m.SponsorContactPhone,
	}
}

func FromSponsorModels(models []model.SponsorModel) []SponsorResponse {
	out := make([]SponsorResponse, 0, len(models))
	for i := range models {
		out = append(out, *FromSponsorModel(&models[i]))
	}
	return out
}

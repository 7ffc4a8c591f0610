package dto

import (
	"github.com/lib/pq"

	"eventku_backend/internals/features/sponsorships/model"
)

type SponsorshipTierRequest struct {
	SponsorshipTierName      string   `json:"sponsorship_tier_name" validate:"required,max=50"`
	SponsorshipTierMinAmount float64  `json:"sponsorship_tier_min_amount" validate:"gte=0"`
	SponsorshipTierBenefits  []string `json:"sponsorship_tier_benefits"`
}

type SponsorshipTierResponse struct {
	SponsorshipTierID        int64    `json:"sponsorship_tier_id"`
	SponsorshipTierName      string   `json:"sponsorship_tier_name"`
	SponsorshipTierMinAmount float64  `json:"sponsorship_tier_min_amount"`
	SponsorshipTierBenefits  []string `json:"sponsorship_tier_benefits,omitempty"`
}

func (r *SponsorshipTierRequest) ToModel() *model.SponsorshipTierModel {
	return &model.SponsorshipTierModel{
		SponsorshipTierName:      r.SponsorshipTierName,
		SponsorshipTierMinAmount: r.SponsorshipTierMinAmount,
		SponsorshipTierBenefits:  pq.StringArray(r.SponsorshipTierBenefits),
	}
}

func FromSponsorshipTierModel(m *model.SponsorshipTierModel) *SponsorshipTierResponse {
	return &SponsorshipTierResponse{
		SponsorshipTierID:        m.SponsorshipTierID,
		SponsorshipTierName:      m.SponsorshipTierName,
		SponsorshipTierMinAmount: m.SponsorshipTierMinAmount,
		SponsorshipTierBenefits:  []string(m.SponsorshipTierBenefits),
	}
}

func FromSponsorshipTierModels(models []model.SponsorshipTierModel) []SponsorshipTierResponse {
	out := make([]SponsorshipTierResponse, 0, len(models))
	for i := range models {
		out = append(out, *FromSponsorshipTierModel(&models[i]))
	}
	return out
}

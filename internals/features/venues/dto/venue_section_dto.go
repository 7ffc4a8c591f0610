package dto

import (
	"eventku_backend/internals/features/venues/model"
)

type VenueSectionRequest struct {
	VenueSectionName     string `json:"venue_section_name" validate:"required,max=100"`
	VenueSectionCapacity int    `json:"venue_section_capacity" validate:"required,gt=0"`
}

type VenueSectionResponse struct {
	VenueSectionID       int64  `json:"venue_section_id"`
	VenueSectionVenueID  int64  `json:"venue_section_venue_id"`
	VenueSectionName     string `json:"venue_section_name"`
	VenueSectionCapacity int    `json:"venue_section_capacity"`
}

func (r *VenueSectionRequest) ToModel(venueID int64) *model.VenueSectionModel {
	return &model.VenueSectionModel{
		VenueSectionVenueID:  venueID,
		VenueSectionName:     r.VenueSectionName,
		VenueSectionCapacity: r.VenueSectionCapacity,
	}
}

func (r *VenueSectionRequest) Apply(m *model.VenueSectionModel) {
	m.VenueSectionName = r.VenueSectionName
	m.VenueSectionCapacity = r.VenueSectionCapacity
}

func FromVenueSectionModel(m *model.VenueSectionModel) *VenueSectionResponse {
	return &VenueSectionResponse{
		VenueSectionID:       m.VenueSectionID,
		VenueSectionVenueID:  m.VenueSectionVenueID,
		VenueSectionName:     m.VenueSectionName,
		VenueSectionCapacity: m.VenueSectionCapacity,
	}
}

func FromVenueSectionModels(models []model.VenueSectionModel) []VenueSectionResponse {
	out := make([]VenueSectionResponse, 0, len(models))
	for i := range models {
		out = append(out, *FromVenueSectionModel(&models[i]))
	}
	return out
}

package dto

import (
	"eventku_backend/internals/features/events/model"
)

type EventCategoryRequest struct {
	EventCategoryName        string  `json:"event_category_name" validate:"required,max=100"`
	EventCategoryDescription *string `json:"event_category_description"`
}

type EventCategoryResponse struct {
	EventCategoryID          int64   `json:"event_category_id"`
	EventCategoryName        string  `json:"event_category_name"`
	EventCategoryDescription *string `json:"event_category_description,omitempty"`
}

func (r *EventCategoryRequest) ToModel() *model.EventCategoryModel {
	return &model.EventCategoryModel{
		EventCategoryName:        r.EventCategoryName,
		EventCategoryDescription: r.EventCategoryDescription,
	}
}

func FromEventCategoryModel(m *model.EventCategoryModel) *EventCategoryResponse {
	return &EventCategoryResponse{
		EventCategoryID:          m.EventCategoryID,
		EventCategoryName:        m.EventCategoryName,
		EventCategoryDescription: m.EventCategoryDescription,
	}
}

func FromEventCategoryModels(models []model.EventCategoryModel) []EventCategoryResponse {
	out := make([]EventCategoryResponse, 0, len(models))
	for i := range models {
		out = append(out, *FromEventCategoryModel(&models[i]))
	}
	return out
}

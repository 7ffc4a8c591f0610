package dto

import (
	"time"

	"eventku_backend/internals/features/rsvps/model"
)

type CreateEventFeedbackRequest struct {
	EventFeedbackUserID  int64   `json:"event_feedback_user_id" validate:"required,gt=0"`
	EventFeedbackRating  int     `json:"event_feedback_rating" validate:"required,gte=1,lte=5"`
	EventFeedbackComment *string `json:"event_feedback_comment"`
}

type UpdateEventFeedbackRequest struct {
	EventFeedbackRating  *int    `json:"event_feedback_rating" validate:"omitempty,gte=1,lte=5"`
	EventFeedbackComment *string `json:"event_feedback_comment"`
}

type EventFeedbackResponse struct {
	EventFeedbackID        int64     `json:"event_feedback_id"`
	EventFeedbackEventID   int64     `json:"event_feedback_event_id"`
	EventFeedbackUserID    int64     `json:"event_feedback_user_id"`
	EventFeedbackRating    int       `json:"event_feedback_rating"`
	EventFeedbackComment   *string   `json:"event_feedback_comment,omitempty"`
	EventFeedbackCreatedAt time.Time `json:"event_feedback_created_at"`
}

// EventFeedbackSummary aggregates ratings for one event.
type EventFeedbackSummary struct {
	EventID       int64   `json:"event_id"`
	AverageRating float64 `json:"average_rating"`
	FeedbackCount int64   `json:"feedback_count"`
}

func (r *CreateEventFeedbackRequest) ToModel(eventID int64) *model.EventFeedbackModel {
	return &model.EventFeedbackModel{
		EventFeedbackEventID: eventID,
		EventFeedbackUserID:  r.EventFeedbackUserID,
		EventFeedbackRating:  r.EventFeedbackRating,
		EventFeedbackComment: r.EventFeedbackComment,
	}
}

func (r *UpdateEventFeedbackRequest) Apply(m *model.EventFeedbackModel) {
	if r.EventFeedbackRating != nil {
		m.EventFeedbackRating = *r.EventFeedbackRating
	}
	if r.EventFeedbackComment != nil {
		m.EventFeedbackComment = r.EventFeedbackComment
	}
}

func FromEventFeedbackModel(m *model.EventFeedbackModel) *EventFeedbackResponse {
	return &EventFeedbackResponse{
		EventFeedbackID:        m.EventFeedbackID,
		EventFeedbackEventID:   m.EventFeedbackEventID,
		EventFeedbackUserID:    m.EventFeedbackUserID,
		EventFeedbackRating:    m.EventFeedbackRating,
		EventFeedbackComment:   m.EventFeedbackComment,
		EventFeedbackCreatedAt: m.EventFeedbackCreatedAt,
	}
}

func FromEventFeedbackModels(models []model.EventFeedbackModel) []EventFeedbackResponse {
	out := make([]EventFeedbackResponse, 0, len(models))
	for i := range models {
		out = append(out, *FromEventFeedbackModel(&models[i]))
	}
	return out
}

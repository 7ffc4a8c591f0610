package dto

import (
	"errors"
	"time"

	"eventku_backend/internals/features/events/model"
)

var ErrScheduleEndBeforeStart = errors.New("event_schedule_end_time must be after event_schedule_start_time")

type EventScheduleRequest struct {
	EventScheduleTitle       string  `json:"event_schedule_title" validate:"required,max=200"`
	EventScheduleDescription *string `json:"event_schedule_description"`

	EventScheduleStartTime time.Time `json:"event_schedule_start_time" validate:"required"`
	EventScheduleEndTime   time.Time `json:"event_schedule_end_time" validate:"required"`

	EventScheduleSpeakerName *string `json:"event_schedule_speaker_name" validate:"omitempty,max=100"`
	EventScheduleSpeakerBio  *string `json:"event_schedule_speaker_bio"`
}

type EventScheduleResponse struct {
	EventScheduleID      int64 `json:"event_schedule_id"`
	EventScheduleEventID int64 `json:"event_schedule_event_id"`

	EventScheduleTitle       string  `json:"event_schedule_title"`
	EventScheduleDescription *string `json:"event_schedule_description,omitempty"`

	EventScheduleStartTime time.Time `json:"event_schedule_start_time"`
	EventScheduleEndTime   time.Time `json:"event_schedule_end_time"`

	EventScheduleSpeakerName *string `json:"event_schedule_speaker_name,omitempty"`
	EventScheduleSpeakerBio  *string `json:"event_schedule_speaker_bio,omitempty"`
}

func (r *EventScheduleRequest) ToModel(eventID int64) (*model.EventScheduleModel, error) {
	if !r.EventScheduleEndTime.After(r.EventScheduleStartTime) {
		return nil, ErrScheduleEndBeforeStart
	}
	return &model.EventScheduleModel{
		EventScheduleEventID:     eventID,
		EventScheduleTitle:       r.EventScheduleTitle,
		EventScheduleDescription: r.EventScheduleDescription,
		EventScheduleStartTime:   r.EventScheduleStartTime,
		EventScheduleEndTime:     r.EventScheduleEndTime,
		EventScheduleSpeakerName: r.EventScheduleSpeakerName,
		EventScheduleSpeakerBio:  r.EventScheduleSpeakerBio,
	}, nil
}

// Apply replaces the session fields and re-checks the time ordering.
func (r *EventScheduleRequest) Apply(m *model.EventScheduleModel) error {
	if !r.EventScheduleEndTime.After(r.EventScheduleStartTime) {
		return ErrScheduleEndBeforeStart
	}
	m.EventScheduleTitle = r.EventScheduleTitle
	m.EventScheduleDescription = r.EventScheduleDescription
	m.EventScheduleStartTime = r.EventScheduleStartTime
	m.EventScheduleEndTime = r.EventScheduleEndTime
	m.EventScheduleSpeakerName = r.EventScheduleSpeakerName
	m.EventScheduleSpeakerBio = r.EventScheduleSpeakerBio
	return nil
}

func FromEventScheduleModel(m *model.EventScheduleModel) *EventScheduleResponse {
	return &EventScheduleResponse{
		EventScheduleID:          m.EventScheduleID,
		EventScheduleEventID:     m.EventScheduleEventID,
		EventScheduleTitle:       m.EventScheduleTitle,
		EventScheduleDescription: m.EventScheduleDescription,
		EventScheduleStartTime:   m.EventScheduleStartTime,
		EventScheduleEndTime:     m.EventScheduleEndTime,
		EventScheduleSpeakerName: m.EventScheduleSpeakerName,
		EventScheduleSpeakerBio:  m.EventScheduleSpeakerBio,
	}
}

func FromEventScheduleModels(models []model.EventScheduleModel) []EventScheduleResponse {
	out := make([]EventScheduleResponse, 0, len(models))
	for i := range models {
		out = append(out, *FromEventScheduleModel(&models[i]))
	}
	return out
}

package dto

import (
	"errors"
	"time"

	"gorm.io/datatypes"

	"eventku_backend/internals/constants"
	"eventku_backend/internals/features/events/model"
)

var (
	ErrEndBeforeStart = errors.New("event_end_datetime must be after event_start_datetime")
	ErrUnknownStatus  = errors.New("event_status must be one of: draft, published, cancelled, completed")
	ErrPatternNoRecur = errors.New("event_recurrence_pattern requires event_is_recurring")
)

type CreateEventRequest struct {
	EventOrganizerID int64  `json:"event_organizer_id" validate:"required,gt=0"`
	EventCategoryID  int64  `json:"event_category_id" validate:"required,gt=0"`
	EventVenueID     *int64 `json:"event_venue_id" validate:"omitempty,gt=0"`

	EventTitle       string `json:"event_title" validate:"required,max=200"`
	EventDescription string `json:"event_description" validate:"required"`

	EventStartDatetime time.Time `json:"event_start_datetime" validate:"required"`
	EventEndDatetime   time.Time `json:"event_end_datetime" validate:"required"`

	EventIsRecurring       bool           `json:"event_is_recurring"`
	EventRecurrencePattern datatypes.JSON `json:"event_recurrence_pattern"`
	EventImageURL          *string        `json:"event_image_url" validate:"omitempty,max=255"`
}

type UpdateEventRequest struct {
	EventCategoryID *int64 `json:"event_category_id" validate:"omitempty,gt=0"`
	EventVenueID    *int64 `json:"event_venue_id" validate:"omitempty,gt=0"`

	EventTitle       *string `json:"event_title" validate:"omitempty,max=200"`
	EventDescription *string `json:"event_description"`

	EventStartDatetime *time.Time `json:"event_start_datetime"`
	EventEndDatetime   *time.Time `json:"event_end_datetime"`

	EventIsRecurring       *bool          `json:"event_is_recurring"`
	EventRecurrencePattern datatypes.JSON `json:"event_recurrence_pattern"`
	EventImageURL          *string        `json:"event_image_url" validate:"omitempty,max=255"`
}

type UpdateEventStatusRequest struct {
	EventStatus string `json:"event_status" validate:"required,oneof=draft published cancelled completed"`
}

type EventResponse struct {
	EventID          int64  `json:"event_id"`
	EventOrganizerID int64  `json:"event_organizer_id"`
	EventCategoryID  int64  `json:"event_category_id"`
	EventVenueID     *int64 `json:"event_venue_id,omitempty"`

	EventTitle       string `json:"event_title"`
	EventDescription string `json:"event_description"`

	EventStartDatetime time.Time `json:"event_start_datetime"`
	EventEndDatetime   time.Time `json:"event_end_datetime"`
	EventStatus        string    `json:"event_status"`

	EventIsRecurring       bool           `json:"event_is_recurring"`
	EventRecurrencePattern datatypes.JSON `json:"event_recurrence_pattern,omitempty"`
	EventImageURL          *string        `json:"event_image_url,omitempty"`

	EventCreatedAt time.Time `json:"event_created_at"`
	EventUpdatedAt time.Time `json:"event_updated_at"`
}

// ToModel validates the date ordering and builds a draft event.
func (r *CreateEventRequest) ToModel() (*model.EventModel, error) {
	if !r.EventEndDatetime.After(r.EventStartDatetime) {
		return nil, ErrEndBeforeStart
	}
	if len(r.EventRecurrencePattern) > 0 && !r.EventIsRecurring {
		return nil, ErrPatternNoRecur
	}
	return &model.EventModel{
		EventOrganizerID:       r.EventOrganizerID,
		EventCategoryID:        r.EventCategoryID,
		EventVenueID:           r.EventVenueID,
		EventTitle:             r.EventTitle,
		EventDescription:       r.EventDescription,
		EventStartDatetime:     r.EventStartDatetime,
		EventEndDatetime:       r.EventEndDatetime,
		EventStatus:            constants.EventStatusDraft,
		EventIsRecurring:       r.EventIsRecurring,
		EventRecurrencePattern: r.EventRecurrencePattern,
		EventImageURL:          r.EventImageURL,
	}, nil
}

// Apply copies provided fields and re-checks the date ordering invariant
// against the resulting row.
func (r *UpdateEventRequest) Apply(m *model.EventModel) error {
	if r.EventCategoryID != nil {
		m.EventCategoryID = *r.EventCategoryID
	}
	if r.EventVenueID != nil {
		m.EventVenueID = r.EventVenueID
	}
	if r.EventTitle != nil {
		m.EventTitle = *r.EventTitle
	}
	if r.EventDescription != nil {
		m.EventDescription = *r.EventDescription
	}
	if r.EventStartDatetime != nil {
		m.EventStartDatetime = *r.EventStartDatetime
	}
	if r.EventEndDatetime != nil {
		m.EventEndDatetime = *r.EventEndDatetime
	}
	if r.EventIsRecurring != nil {
		m.EventIsRecurring = *r.EventIsRecurring
	}
	if len(r.EventRecurrencePattern) > 0 {
		m.EventRecurrencePattern = r.EventRecurrencePattern
	}
	if r.EventImageURL != nil {
		m.EventImageURL = r.EventImageURL
	}
	if !m.EventEndDatetime.After(m.EventStartDatetime) {
		return ErrEndBeforeStart
	}
	return nil
}

func FromEventModel(m *model.EventModel) *EventResponse {
	return &EventResponse{
		EventID:                m.EventID,
		EventOrganizerID:       m.EventOrganizerID,
		EventCategoryID:        m.EventCategoryID,
		EventVenueID:           m.EventVenueID,
		EventTitle:             m.EventTitle,
		EventDescription:       m.EventDescription,
		EventStartDatetime:     m.EventStartDatetime,
		EventEndDatetime:       m.EventEndDatetime,
		EventStatus:            m.EventStatus,
		EventIsRecurring:       m.EventIsRecurring,
		EventRecurrencePattern: m.EventRecurrencePattern,
		EventImageURL:          m.EventImageURL,
		EventCreatedAt:         m.EventCreatedAt,
		EventUpdatedAt:         m.EventUpdatedAt,
	}
}

func FromEventModels(models []model.EventModel) []EventResponse {
	out := make([]EventResponse, 0, len(models))
	for i := range models {
		out = append(out, *FromEventModel(&models[i]))
	}
	return out
}

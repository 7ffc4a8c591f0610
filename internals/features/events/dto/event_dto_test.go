package dto

import (
	"errors"
	"testing"
	"time"

	"gorm.io/datatypes"

	"eventku_backend/internals/constants"
)

func validCreateRequest() CreateEventRequest {
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	return CreateEventRequest{
		EventOrganizerID:   1,
		EventCategoryID:    1,
		EventTitle:         "Go Meetup",
		EventDescription:   "Monthly community meetup",
		EventStartDatetime: start,
		EventEndDatetime:   start.Add(3 * time.Hour),
	}
}

func TestCreateEventRequestToModel(t *testing.T) {
	t.Run("new event starts as draft", func(t *testing.T) {
		req := validCreateRequest()
		event, err := req.ToModel()
		if err != nil {
			t.Fatalf("ToModel: %v", err)
		}
		if event.EventStatus != constants.EventStatusDraft {
			t.Errorf("status = %q, want %q", event.EventStatus, constants.EventStatusDraft)
		}
	})

	t.Run("end before start rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.EventEndDatetime = req.EventStartDatetime.Add(-time.Hour)
		if _, err := req.ToModel(); !errors.Is(err, ErrEndBeforeStart) {
			t.Fatalf("err = %v, want ErrEndBeforeStart", err)
		}
	})

	t.Run("end equal to start rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.EventEndDatetime = req.EventStartDatetime
		if _, err := req.ToModel(); !errors.Is(err, ErrEndBeforeStart) {
			t.Fatalf("err = %v, want ErrEndBeforeStart", err)
		}
	})

	t.Run("recurrence pattern requires recurring flag", func(t *testing.T) {
		req := validCreateRequest()
		req.EventRecurrencePattern = datatypes.JSON(`{"freq":"weekly"}`)
		if _, err := req.ToModel(); !errors.Is(err, ErrPatternNoRecur) {
			t.Fatalf("err = %v, want ErrPatternNoRecur", err)
		}
		req.EventIsRecurring = true
		if _, err := req.ToModel(); err != nil {
			t.Fatalf("recurring with pattern should pass, got %v", err)
		}
	})
}

func TestUpdateEventRequestApply(t *testing.T) {
	createReq := validCreateRequest()
	base, err := createReq.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}

	t.Run("partial update keeps other fields", func(t *testing.T) {
		event := *base
		title := "Go Meetup (rescheduled)"
		req := UpdateEventRequest{EventTitle: &title}
		if err := req.Apply(&event); err != nil {
			t.Fatalf("Apply: %v", err)
		}
		if event.EventTitle != title {
			t.Errorf("title not applied")
		}
		if event.EventDescription != base.EventDescription {
			t.Errorf("description mutated by unrelated update")
		}
	})

	t.Run("moving start past end rejected", func(t *testing.T) {
		event := *base
		badStart := event.EventEndDatetime.Add(time.Hour)
		req := UpdateEventRequest{EventStartDatetime: &badStart}
		if err := req.Apply(&event); !errors.Is(err, ErrEndBeforeStart) {
			t.Fatalf("err = %v, want ErrEndBeforeStart", err)
		}
	})

	t.Run("moving both ends together passes", func(t *testing.T) {
		event := *base
		newStart := event.EventStartDatetime.Add(24 * time.Hour)
		newEnd := event.EventEndDatetime.Add(24 * time.Hour)
		req := UpdateEventRequest{EventStartDatetime: &newStart, EventEndDatetime: &newEnd}
		if err := req.Apply(&event); err != nil {
			t.Fatalf("Apply: %v", err)
		}
	})
}

func TestEventScheduleRequestToModel(t *testing.T) {
	start := time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)
	req := EventScheduleRequest{
		EventScheduleTitle:     "Opening keynote",
		EventScheduleStartTime: start,
		EventScheduleEndTime:   start.Add(time.Hour),
	}
	session, err := req.ToModel(7)
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if session.EventScheduleEventID != 7 {
		t.Errorf("event id = %d, want 7", session.EventScheduleEventID)
	}

	req.EventScheduleEndTime = start
	if _, err := req.ToModel(7); !errors.Is(err, ErrScheduleEndBeforeStart) {
		t.Fatalf("err = %v, want ErrScheduleEndBeforeStart", err)
	}
}

func TestEventScheduleRequestApply(t *testing.T) {
	start := time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)
	req := EventScheduleRequest{
		EventScheduleTitle:     "Opening keynote",
		EventScheduleStartTime: start,
		EventScheduleEndTime:   start.Add(time.Hour),
	}
	session, err := req.ToModel(7)
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}

	t.Run("replaces fields and keeps the event", func(t *testing.T) {
		s := *session
		update := req
		update.EventScheduleTitle = "Closing keynote"
		update.EventScheduleStartTime = start.Add(6 * time.Hour)
		update.EventScheduleEndTime = start.Add(7 * time.Hour)
		if err := update.Apply(&s); err != nil {
			t.Fatalf("Apply: %v", err)
		}
		if s.EventScheduleTitle != "Closing keynote" {
			t.Errorf("title not applied")
		}
		if s.EventScheduleEventID != 7 {
			t.Errorf("event id changed to %d", s.EventScheduleEventID)
		}
	})

	t.Run("time ordering re-checked", func(t *testing.T) {
		s := *session
		update := req
		update.EventScheduleEndTime = update.EventScheduleStartTime
		if err := update.Apply(&s); !errors.Is(err, ErrScheduleEndBeforeStart) {
			t.Fatalf("err = %v, want ErrScheduleEndBeforeStart", err)
		}
	})
}

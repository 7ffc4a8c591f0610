package dto

import (
	"errors"
	"testing"
	"time"

	"eventku_backend/internals/features/ticketing/model"
)

func TestTicketTypeRequestToModel(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	req := TicketTypeRequest{
		TicketTypeName:              "Early Bird",
		TicketTypePrice:             49.99,
		TicketTypeQuantityAvailable: 200,
		TicketTypeSalesStart:        start,
		TicketTypeSalesEnd:          start.AddDate(0, 1, 0),
		TicketTypeMaxPerUser:        4,
	}

	tt, err := req.ToModel(3)
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if tt.TicketTypeEventID != 3 {
		t.Errorf("event id = %d, want 3", tt.TicketTypeEventID)
	}
	if tt.TicketTypeQuantitySold != 0 {
		t.Errorf("new type starts with sold = %d, want 0", tt.TicketTypeQuantitySold)
	}
	if tt.Remaining() != 200 {
		t.Errorf("Remaining() = %d, want 200", tt.Remaining())
	}

	req.TicketTypeSalesEnd = start
	if _, err := req.ToModel(3); !errors.Is(err, ErrSalesEndBeforeStart) {
		t.Fatalf("err = %v, want ErrSalesEndBeforeStart", err)
	}
}

func TestTicketTypeRequestApply(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	base := func() TicketTypeRequest {
		return TicketTypeRequest{
			TicketTypeName:              "General",
			TicketTypePrice:             30,
			TicketTypeQuantityAvailable: 100,
			TicketTypeSalesStart:        start,
			TicketTypeSalesEnd:          start.AddDate(0, 1, 0),
			TicketTypeMaxPerUser:        4,
		}
	}

	seed := func(t *testing.T) *model.TicketTypeModel {
		t.Helper()
		req := base()
		tt, err := req.ToModel(3)
		if err != nil {
			t.Fatalf("ToModel: %v", err)
		}
		tt.TicketTypeQuantitySold = 40
		return tt
	}

	t.Run("replaces fields and keeps the sold counter", func(t *testing.T) {
		tt := seed(t)
		req := base()
		req.TicketTypeName = "General (late)"
		req.TicketTypePrice = 35
		req.TicketTypeQuantityAvailable = 120
		if err := req.Apply(tt); err != nil {
			t.Fatalf("Apply: %v", err)
		}
		if tt.TicketTypeName != "General (late)" || tt.TicketTypePrice != 35 {
			t.Errorf("fields not applied: %+v", tt)
		}
		if tt.TicketTypeQuantitySold != 40 {
			t.Errorf("sold = %d, want 40 (update must not touch the counter)", tt.TicketTypeQuantitySold)
		}
		if tt.Remaining() != 80 {
			t.Errorf("Remaining() = %d, want 80", tt.Remaining())
		}
	})

	t.Run("sales window re-checked", func(t *testing.T) {
		tt := seed(t)
		req := base()
		req.TicketTypeSalesEnd = req.TicketTypeSalesStart
		if err := req.Apply(tt); !errors.Is(err, ErrSalesEndBeforeStart) {
			t.Fatalf("err = %v, want ErrSalesEndBeforeStart", err)
		}
	})

	t.Run("availability cannot drop below units sold", func(t *testing.T) {
		tt := seed(t)
		req := base()
		req.TicketTypeQuantityAvailable = 39
		if err := req.Apply(tt); !errors.Is(err, ErrQuantityBelowSold) {
			t.Fatalf("err = %v, want ErrQuantityBelowSold", err)
		}
		if tt.TicketTypeQuantityAvailable != 100 {
			t.Errorf("rejected Apply mutated the model: available = %d", tt.TicketTypeQuantityAvailable)
		}
		// Shrinking exactly to the sold count is allowed.
		req.TicketTypeQuantityAvailable = 40
		if err := req.Apply(tt); err != nil {
			t.Fatalf("Apply to sold count: %v", err)
		}
		if tt.Remaining() != 0 {
			t.Errorf("Remaining() = %d, want 0", tt.Remaining())
		}
	})
}

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"eventku_backend/internals/constants"
	EventModel "eventku_backend/internals/features/events/model"
	"eventku_backend/internals/features/ticketing/model"
	UserModel "eventku_backend/internals/features/users/model"
	"eventku_backend/internals/testutil"
)

func seedSale(t *testing.T, db *gorm.DB, capacity, maxPerUser, buyers int) (*model.TicketTypeModel, []int64) {
	t.Helper()

	organizer := &UserModel.UserModel{Username: "org", Email: "org@example.com", PasswordHash: "x", FullName: "Organizer", IsActive: true}
	if err := db.Create(organizer).Error; err != nil {
		t.Fatalf("seed organizer: %v", err)
	}
	category := &EventModel.EventCategoryModel{EventCategoryName: "concert"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	start := time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC)
	event := &EventModel.EventModel{
		EventOrganizerID:   organizer.ID,
		EventCategoryID:    category.EventCategoryID,
		EventTitle:         "Arena Night",
		EventDescription:   "one night only",
		EventStartDatetime: start,
		EventEndDatetime:   start.Add(4 * time.Hour),
		EventStatus:        constants.EventStatusPublished,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}
	tt := &model.TicketTypeModel{
		TicketTypeEventID:           event.EventID,
		TicketTypeName:              "GA",
		TicketTypePrice:             25,
		TicketTypeQuantityAvailable: capacity,
		TicketTypeSalesStart:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		TicketTypeSalesEnd:          time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		TicketTypeMaxPerUser:        maxPerUser,
	}
	if err := db.Create(tt).Error; err != nil {
		t.Fatalf("seed ticket type: %v", err)
	}

	ids := make([]int64, 0, buyers)
	for i := 0; i < buyers; i++ {
		u := &UserModel.UserModel{
			Username:     fmt.Sprintf("buyer%d", i),
			Email:        fmt.Sprintf("buyer%d@example.com", i),
			PasswordHash: "x",
			FullName:     fmt.Sprintf("Buyer %d", i),
			IsActive:     true,
		}
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("seed buyer: %v", err)
		}
		ids = append(ids, u.ID)
	}
	return tt, ids
}

// Forty buyers race for ten seats. Exactly ten purchases may succeed and the
// counter must land exactly on the capacity.
func TestPurchaseConcurrency(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.Reset(t, db)

	const capacity = 10
	const buyers = 40

	tt, buyerIDs := seedSale(t, db, capacity, 1, buyers)

	svc := NewPurchaseService(NewGormInventoryRepo(db))
	svc.Now = func() time.Time { return time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC) }

	var wg sync.WaitGroup
	results := make(chan error, buyers)
	for _, userID := range buyerIDs {
		wg.Add(1)
		go func(uid int64) {
			defer wg.Done()
			_, err := svc.Purchase(context.Background(), PurchaseInput{
				TicketTypeID: tt.TicketTypeID,
				UserID:       uid,
				Quantity:     1,
			})
			results <- err
		}(userID)
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrSoldOut):
			losses++
		default:
			t.Errorf("unexpected purchase error: %v", err)
		}
	}
	if wins != capacity {
		t.Errorf("wins = %d, want %d", wins, capacity)
	}
	if losses != buyers-capacity {
		t.Errorf("losses = %d, want %d", losses, buyers-capacity)
	}

	var final model.TicketTypeModel
	if err := db.First(&final, tt.TicketTypeID).Error; err != nil {
		t.Fatalf("reload ticket type: %v", err)
	}
	if final.TicketTypeQuantitySold != capacity {
		t.Errorf("sold = %d, want %d", final.TicketTypeQuantitySold, capacity)
	}

	var ticketCount int64
	db.Model(&model.TicketModel{}).Where("ticket_ticket_type_id = ?", tt.TicketTypeID).Count(&ticketCount)
	if ticketCount != capacity {
		t.Errorf("tickets issued = %d, want %d", ticketCount, capacity)
	}
}

func TestCancelReleasesInventoryIntegration(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.Reset(t, db)

	tt, buyerIDs := seedSale(t, db, 1, 1, 2)

	svc := NewPurchaseService(NewGormInventoryRepo(db))
	svc.Now = func() time.Time { return time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC) }

	ctx := context.Background()
	tickets, err := svc.Purchase(ctx, PurchaseInput{TicketTypeID: tt.TicketTypeID, UserID: buyerIDs[0], Quantity: 1})
	if err != nil {
		t.Fatalf("first purchase: %v", err)
	}
	if _, err := svc.Purchase(ctx, PurchaseInput{TicketTypeID: tt.TicketTypeID, UserID: buyerIDs[1], Quantity: 1}); !errors.Is(err, ErrSoldOut) {
		t.Fatalf("expected sold out, got %v", err)
	}

	if _, err := svc.Cancel(ctx, tickets[0].TicketID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := svc.Purchase(ctx, PurchaseInput{TicketTypeID: tt.TicketTypeID, UserID: buyerIDs[1], Quantity: 1}); err != nil {
		t.Fatalf("resale after cancel: %v", err)
	}
}

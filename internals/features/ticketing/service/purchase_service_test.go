package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"eventku_backend/internals/constants"
	"eventku_backend/internals/features/ticketing/model"
)

// fakeInventoryRepo keeps everything in memory. WithTx snapshots state and
// rolls it back when fn fails, mirroring the all-or-nothing transaction.
type fakeInventoryRepo struct {
	types   map[int64]*model.TicketTypeModel
	tickets map[int64]*model.TicketModel
	nextID  int64
}

func newFakeRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{
		types:   map[int64]*model.TicketTypeModel{},
		tickets: map[int64]*model.TicketModel{},
		nextID:  1,
	}
}

func (f *fakeInventoryRepo) snapshot() (map[int64]model.TicketTypeModel, map[int64]model.TicketModel, int64) {
	types := make(map[int64]model.TicketTypeModel, len(f.types))
	for id, tt := range f.types {
		types[id] = *tt
	}
	tickets := make(map[int64]model.TicketModel, len(f.tickets))
	for id, t := range f.tickets {
		tickets[id] = *t
	}
	return types, tickets, f.nextID
}

func (f *fakeInventoryRepo) WithTx(ctx context.Context, fn func(r InventoryRepo) error) error {
	types, tickets, nextID := f.snapshot()
	if err := fn(f); err != nil {
		f.types = map[int64]*model.TicketTypeModel{}
		for id := range types {
			tt := types[id]
			f.types[id] = &tt
		}
		f.tickets = map[int64]*model.TicketModel{}
		for id := range tickets {
			t := tickets[id]
			f.tickets[id] = &t
		}
		f.nextID = nextID
		return err
	}
	return nil
}

func (f *fakeInventoryRepo) GetTicketTypeForUpdate(ctx context.Context, id int64) (*model.TicketTypeModel, error) {
	tt, ok := f.types[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *tt
	return &cp, nil
}

func (f *fakeInventoryRepo) CountUserActiveTickets(ctx context.Context, typeID, userID int64) (int64, error) {
	var n int64
	for _, t := range f.tickets {
		if t.TicketTicketTypeID == typeID && t.TicketUserID == userID && t.TicketStatus == constants.TicketStatusActive {
			n++
		}
	}
	return n, nil
}

func (f *fakeInventoryRepo) AddSold(ctx context.Context, typeID int64, delta int) error {
	tt, ok := f.types[typeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	tt.TicketTypeQuantitySold += delta
	return nil
}

func (f *fakeInventoryRepo) InsertTickets(ctx context.Context, tickets []model.TicketModel) error {
	for i := range tickets {
		tickets[i].TicketID = f.nextID
		f.nextID++
		cp := tickets[i]
		f.tickets[cp.TicketID] = &cp
	}
	return nil
}

func (f *fakeInventoryRepo) GetTicketForUpdate(ctx context.Context, id int64) (*model.TicketModel, error) {
	t, ok := f.tickets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeInventoryRepo) UpdateTicketStatus(ctx context.Context, id int64, status string) error {
	t, ok := f.tickets[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.TicketStatus = status
	return nil
}

var saleWindow = struct {
	open, now, closed time.Time
}{
	open:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	now:    time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
	closed: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
}

func newServiceWithType(available, sold, maxPerUser int) (*PurchaseService, *fakeInventoryRepo) {
	repo := newFakeRepo()
	repo.types[1] = &model.TicketTypeModel{
		TicketTypeID:                1,
		TicketTypeEventID:           1,
		TicketTypeName:              "General",
		TicketTypeQuantityAvailable: available,
		TicketTypeQuantitySold:      sold,
		TicketTypeSalesStart:        saleWindow.open,
		TicketTypeSalesEnd:          saleWindow.closed,
		TicketTypeMaxPerUser:        maxPerUser,
	}
	svc := NewPurchaseService(repo)
	svc.Now = func() time.Time { return saleWindow.now }
	return svc, repo
}

func TestPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates tickets and advances the counter", func(t *testing.T) {
		svc, repo := newServiceWithType(10, 0, 5)
		tickets, err := svc.Purchase(ctx, PurchaseInput{TicketTypeID: 1, UserID: 42, Quantity: 3})
		if err != nil {
			t.Fatalf("Purchase: %v", err)
		}
		if len(tickets) != 3 {
			t.Fatalf("got %d tickets, want 3", len(tickets))
		}
		if repo.types[1].TicketTypeQuantitySold != 3 {
			t.Errorf("sold = %d, want 3", repo.types[1].TicketTypeQuantitySold)
		}
		seen := map[string]bool{}
		for _, tk := range tickets {
			if tk.TicketStatus != constants.TicketStatusActive {
				t.Errorf("ticket status = %q, want active", tk.TicketStatus)
			}
			code := tk.TicketCode.String()
			if seen[code] {
				t.Errorf("duplicate ticket code %s", code)
			}
			seen[code] = true
		}
	})

	t.Run("cannot take more than remaining", func(t *testing.T) {
		svc, repo := newServiceWithType(10, 8, 10)
		_, err := svc.Purchase(ctx, PurchaseInput{TicketTypeID: 1, UserID: 42, Quantity: 3})
		if !errors.Is(err, ErrSoldOut) {
			t.Fatalf("err = %v, want ErrSoldOut", err)
		}
		if repo.types[1].TicketTypeQuantitySold != 8 {
			t.Errorf("failed purchase moved the counter to %d", repo.types[1].TicketTypeQuantitySold)
		}
		if len(repo.tickets) != 0 {
			t.Errorf("failed purchase left %d tickets behind", len(repo.tickets))
		}
	})

	t.Run("exactly the remaining stock passes", func(t *testing.T) {
		svc, repo := newServiceWithType(10, 8, 10)
		if _, err := svc.Purchase(ctx, PurchaseInput{TicketTypeID: 1, UserID: 42, Quantity: 2}); err != nil {
			t.Fatalf("Purchase: %v", err)
		}
		if got := repo.types[1].Remaining(); got != 0 {
			t.Errorf("remaining = %d, want 0", got)
		}
	})

	t.Run("per-user cap counts prior purchases", func(t *testing.T) {
		svc, _ := newServiceWithType(100, 0, 4)
		if _, err := svc.Purchase(ctx, PurchaseInput{TicketTypeID: 1, UserID: 42, Quantity: 3}); err != nil {
			t.Fatalf("first purchase: %v", err)
		}
		if _, err := svc.Purchase(ctx, PurchaseInput{TicketTypeID: 1, UserID: 42, Quantity: 2}); !errors.Is(err, ErrPerUserCap) {
			t.Fatalf("err = %v, want ErrPerUserCap", err)
		}
		// Another user is unaffected.
		if _, err := svc.Purchase(ctx, PurchaseInput{TicketTypeID: 1, UserID: 43, Quantity: 4}); err != nil {
			t.Fatalf("other user blocked: %v", err)
		}
	})

	t.Run("before sales open", func(t *testing.T) {
		svc, _ := newServiceWithType(10, 0, 5)
		svc.Now = func() time.Time { return saleWindow.open.Add(-time.Hour) }
		if _, err := svc.Purchase(ctx, PurchaseInput{TicketTypeID: 1, UserID: 42, Quantity: 1}); !errors.Is(err, ErrSalesNotStarted) {
			t.Fatalf("err = %v, want ErrSalesNotStarted", err)
		}
	})

	t.Run("after sales close", func(t *testing.T) {
		svc, _ := newServiceWithType(10, 0, 5)
		svc.Now = func() time.Time { return saleWindow.closed.Add(time.Hour) }
		if _, err := svc.Purchase(ctx, PurchaseInput{TicketTypeID: 1, UserID: 42, Quantity: 1}); !errors.Is(err, ErrSalesEnded) {
			t.Fatalf("err = %v, want ErrSalesEnded", err)
		}
	})

	t.Run("unknown ticket type", func(t *testing.T) {
		svc, _ := newServiceWithType(10, 0, 5)
		_, err := svc.Purchase(ctx, PurchaseInput{TicketTypeID: 99, UserID: 42, Quantity: 1})
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Fatalf("err = %v, want ErrRecordNotFound", err)
		}
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("releases inventory", func(t *testing.T) {
		svc, repo := newServiceWithType(10, 0, 5)
		tickets, err := svc.Purchase(ctx, PurchaseInput{TicketTypeID: 1, UserID: 42, Quantity: 2})
		if err != nil {
			t.Fatalf("Purchase: %v", err)
		}

		cancelled, err := svc.Cancel(ctx, tickets[0].TicketID)
		if err != nil {
			t.Fatalf("Cancel: %v", err)
		}
		if cancelled.TicketStatus != constants.TicketStatusCancelled {
			t.Errorf("status = %q, want cancelled", cancelled.TicketStatus)
		}
		if repo.types[1].TicketTypeQuantitySold != 1 {
			t.Errorf("sold = %d, want 1 after release", repo.types[1].TicketTypeQuantitySold)
		}
	})

	t.Run("cancelled seat can be resold", func(t *testing.T) {
		svc, _ := newServiceWithType(1, 0, 1)
		tickets, err := svc.Purchase(ctx, PurchaseInput{TicketTypeID: 1, UserID: 42, Quantity: 1})
		if err != nil {
			t.Fatalf("Purchase: %v", err)
		}
		if _, err := svc.Purchase(ctx, PurchaseInput{TicketTypeID: 1, UserID: 43, Quantity: 1}); !errors.Is(err, ErrSoldOut) {
			t.Fatalf("expected sold out before cancel, got %v", err)
		}
		if _, err := svc.Cancel(ctx, tickets[0].TicketID); err != nil {
			t.Fatalf("Cancel: %v", err)
		}
		if _, err := svc.Purchase(ctx, PurchaseInput{TicketTypeID: 1, UserID: 43, Quantity: 1}); err != nil {
			t.Fatalf("resale after cancel failed: %v", err)
		}
	})

	t.Run("double cancel rejected", func(t *testing.T) {
		svc, _ := newServiceWithType(10, 0, 5)
		tickets, err := svc.Purchase(ctx, PurchaseInput{TicketTypeID: 1, UserID: 42, Quantity: 1})
		if err != nil {
			t.Fatalf("Purchase: %v", err)
		}
		if _, err := svc.Cancel(ctx, tickets[0].TicketID); err != nil {
			t.Fatalf("Cancel: %v", err)
		}
		if _, err := svc.Cancel(ctx, tickets[0].TicketID); !errors.Is(err, ErrTicketNotActive) {
			t.Fatalf("err = %v, want ErrTicketNotActive", err)
		}
	})
}

func TestRedeem(t *testing.T) {
	ctx := context.Background()
	svc, repo := newServiceWithType(10, 0, 5)

	tickets, err := svc.Purchase(ctx, PurchaseInput{TicketTypeID: 1, UserID: 42, Quantity: 1})
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}

	redeemed, err := svc.Redeem(ctx, tickets[0].TicketID)
	if err != nil {
		t.Fatalf("Redeem: %v", err)
	}
	if redeemed.TicketStatus != constants.TicketStatusRedeemed {
		t.Errorf("status = %q, want redeemed", redeemed.TicketStatus)
	}
	// Redeeming keeps the unit sold.
	if repo.types[1].TicketTypeQuantitySold != 1 {
		t.Errorf("sold = %d, want 1", repo.types[1].TicketTypeQuantitySold)
	}

	// A redeemed ticket cannot be cancelled or redeemed again.
	if _, err := svc.Cancel(ctx, tickets[0].TicketID); !errors.Is(err, ErrTicketNotActive) {
		t.Errorf("cancel after redeem: err = %v, want ErrTicketNotActive", err)
	}
	if _, err := svc.Redeem(ctx, tickets[0].TicketID); !errors.Is(err, ErrTicketNotActive) {
		t.Errorf("double redeem: err = %v, want ErrTicketNotActive", err)
	}
}

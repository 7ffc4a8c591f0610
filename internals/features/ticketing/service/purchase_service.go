package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"eventku_backend/internals/constants"
	"eventku_backend/internals/features/ticketing/model"
)

var (
	ErrSalesNotStarted = errors.New("ticket sales have not started")
	ErrSalesEnded      = errors.New("ticket sales have ended")
	ErrSoldOut         = errors.New("not enough tickets remaining")
	ErrPerUserCap      = errors.New("per-user ticket limit exceeded")
	ErrTicketNotActive = errors.New("ticket is not active")
)

// InventoryRepo is the storage surface the purchase flow runs against. Every
// call happens inside the transaction opened by WithTx; GetTicketTypeForUpdate
// must hold a row lock until that transaction ends.
type InventoryRepo interface {
	WithTx(ctx context.Context, fn func(r InventoryRepo) error) error
	GetTicketTypeForUpdate(ctx context.Context, ticketTypeID int64) (*model.TicketTypeModel, error)
	CountUserActiveTickets(ctx context.Context, ticketTypeID, userID int64) (int64, error)
	AddSold(ctx context.Context, ticketTypeID int64, delta int) error
	InsertTickets(ctx context.Context, tickets []model.TicketModel) error
	GetTicketForUpdate(ctx context.Context, ticketID int64) (*model.TicketModel, error)
	UpdateTicketStatus(ctx context.Context, ticketID int64, status string) error
}

// PurchaseService serializes inventory movements for one ticket type. All
// decisions (sales window, remaining stock, per-user cap) are made against the
// locked row, so two concurrent purchases can never both take the last unit.
type PurchaseService struct {
	Repo InventoryRepo
	Now  func() time.Time
}

func NewPurchaseService(repo InventoryRepo) *PurchaseService {
	return &PurchaseService{Repo: repo, Now: time.Now}
}

type PurchaseInput struct {
	TicketTypeID int64
	UserID       int64
	Quantity     int
	SectionID    *int64
	SeatNumber   *string
}

// Purchase buys Quantity tickets of one type for one user, all or nothing.
func (s *PurchaseService) Purchase(ctx context.Context, in PurchaseInput) ([]model.TicketModel, error) {
	if in.Quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}

	var created []model.TicketModel
	err := s.Repo.WithTx(ctx, func(r InventoryRepo) error {
		tt, err := r.GetTicketTypeForUpdate(ctx, in.TicketTypeID)
		if err != nil {
			return err
		}

		now := s.Now()
		if now.Before(tt.TicketTypeSalesStart) {
			return ErrSalesNotStarted
		}
		if now.After(tt.TicketTypeSalesEnd) {
			return ErrSalesEnded
		}
		if tt.Remaining() < in.Quantity {
			return ErrSoldOut
		}

		owned, err := r.CountUserActiveTickets(ctx, in.TicketTypeID, in.UserID)
		if err != nil {
			return err
		}
		if owned+int64(in.Quantity) > int64(tt.TicketTypeMaxPerUser) {
			return ErrPerUserCap
		}

		tickets := make([]model.TicketModel, 0, in.Quantity)
		for i := 0; i < in.Quantity; i++ {
			tickets = append(tickets, model.TicketModel{
				TicketTicketTypeID: in.TicketTypeID,
				TicketUserID:       in.UserID,
				TicketSectionID:    in.SectionID,
				TicketCode:         uuid.New(),
				TicketStatus:       constants.TicketStatusActive,
				TicketSeatNumber:   in.SeatNumber,
			})
		}
		if err := r.InsertTickets(ctx, tickets); err != nil {
			return err
		}
		if err := r.AddSold(ctx, in.TicketTypeID, in.Quantity); err != nil {
			return err
		}
		created = tickets
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Cancel releases an active ticket back into inventory.
func (s *PurchaseService) Cancel(ctx context.Context, ticketID int64) (*model.TicketModel, error) {
	var out *model.TicketModel
	err := s.Repo.WithTx(ctx, func(r InventoryRepo) error {
		t, err := r.GetTicketForUpdate(ctx, ticketID)
		if err != nil {
			return err
		}
		if t.TicketStatus != constants.TicketStatusActive {
			return ErrTicketNotActive
		}
		// Lock the type row too so the release and a concurrent purchase
		// cannot interleave.
		if _, err := r.GetTicketTypeForUpdate(ctx, t.TicketTicketTypeID); err != nil {
			return err
		}
		if err := r.UpdateTicketStatus(ctx, ticketID, constants.TicketStatusCancelled); err != nil {
			return err
		}
		if err := r.AddSold(ctx, t.TicketTicketTypeID, -1); err != nil {
			return err
		}
		t.TicketStatus = constants.TicketStatusCancelled
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Redeem marks an active ticket as used at the door. Inventory is untouched.
func (s *PurchaseService) Redeem(ctx context.Context, ticketID int64) (*model.TicketModel, error) {
	var out *model.TicketModel
	err := s.Repo.WithTx(ctx, func(r InventoryRepo) error {
		t, err := r.GetTicketForUpdate(ctx, ticketID)
		if err != nil {
			return err
		}
		if t.TicketStatus != constants.TicketStatusActive {
			return ErrTicketNotActive
		}
		if err := r.UpdateTicketStatus(ctx, ticketID, constants.TicketStatusRedeemed); err != nil {
			return err
		}
		t.TicketStatus = constants.TicketStatusRedeemed
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

package service

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eventku_backend/internals/constants"
	"eventku_backend/internals/features/ticketing/model"
)

// GormInventoryRepo backs InventoryRepo with Postgres row locks
// (SELECT ... FOR UPDATE on the ticket type row).
type GormInventoryRepo struct {
	DB *gorm.DB
}

func NewGormInventoryRepo(db *gorm.DB) *GormInventoryRepo {
	return &GormInventoryRepo{DB: db}
}

func (r *GormInventoryRepo) WithTx(ctx context.Context, fn func(tr InventoryRepo) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormInventoryRepo{DB: tx})
	})
}

func (r *GormInventoryRepo) GetTicketTypeForUpdate(ctx context.Context, ticketTypeID int64) (*model.TicketTypeModel, error) {
	var tt model.TicketTypeModel
	err := r.DB.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&tt, ticketTypeID).Error
	if err != nil {
		return nil, err
	}
	return &tt, nil
}

func (r *GormInventoryRepo) CountUserActiveTickets(ctx context.Context, ticketTypeID, userID int64) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.TicketModel{}).
		Where("ticket_ticket_type_id = ? AND ticket_user_id = ? AND ticket_status = ?",
			ticketTypeID, userID, constants.TicketStatusActive).
		Count(&n).Error
	return n, err
}

func (r *GormInventoryRepo) AddSold(ctx context.Context, ticketTypeID int64, delta int) error {
	return r.DB.WithContext(ctx).Model(&model.TicketTypeModel{}).
		Where("ticket_type_id = ?", ticketTypeID).
		UpdateColumn("ticket_type_quantity_sold", gorm.Expr("ticket_type_quantity_sold + ?", delta)).
		Error
}

func (r *GormInventoryRepo) InsertTickets(ctx context.Context, tickets []model.TicketModel) error {
	return r.DB.WithContext(ctx).Create(&tickets).Error
}

func (r *GormInventoryRepo) GetTicketForUpdate(ctx context.Context, ticketID int64) (*model.TicketModel, error) {
	var t model.TicketModel
	err := r.DB.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&t, ticketID).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *GormInventoryRepo) UpdateTicketStatus(ctx context.Context, ticketID int64, status string) error {
	return r.DB.WithContext(ctx).Model(&model.TicketModel{}).
		Where("ticket_id = ?", ticketID).
		UpdateColumn("ticket_status", status).
		Error
}

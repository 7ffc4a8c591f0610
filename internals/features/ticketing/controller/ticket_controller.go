package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/features/ticketing/dto"
	"eventku_backend/internals/features/ticketing/model"
	"eventku_backend/internals/features/ticketing/service"
	helper "eventku_backend/internals/helpers"
)

type TicketController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Svc      *service.PurchaseService
}

func NewTicketController(db *gorm.DB, v *validator.Validate) *TicketController {
	return &TicketController{
		DB:       db,
		Validate: v,
		Svc:      service.NewPurchaseService(service.NewGormInventoryRepo(db)),
	}
}

func purchaseErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrSoldOut),
		errors.Is(err, service.ErrPerUserCap),
		errors.Is(err, service.ErrTicketNotActive):
		return http.StatusConflict
	case errors.Is(err, service.ErrSalesNotStarted),
		errors.Is(err, service.ErrSalesEnded):
		return http.StatusUnprocessableEntity
	default:
		return 0
	}
}

// Purchase buys tickets of type :id for a user.
func (ctl *TicketController) Purchase(c *fiber.Ctx) error {
	ticketTypeID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req dto.PurchaseTicketsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	tickets, err := ctl.Svc.Purchase(c.UserContext(), service.PurchaseInput{
		TicketTypeID: ticketTypeID,
		UserID:       req.TicketUserID,
		Quantity:     req.Quantity,
		SectionID:    req.TicketSectionID,
		SeatNumber:   req.TicketSeatNumber,
	})
	if err != nil {
		if status := purchaseErrorStatus(err); status != 0 {
			return helper.JsonError(c, status, err.Error())
		}
		return helper.JsonDBError(c, err, "ticket type")
	}
	return helper.JsonCreated(c, "tickets purchased", dto.FromTicketModels(tickets))
}

// Cancel returns an active ticket to inventory.
func (ctl *TicketController) Cancel(c *fiber.Ctx) error {
	ticketID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	ticket, err := ctl.Svc.Cancel(c.UserContext(), ticketID)
	if err != nil {
		if status := purchaseErrorStatus(err); status != 0 {
			return helper.JsonError(c, status, err.Error())
		}
		return helper.JsonDBError(c, err, "ticket")
	}
	return helper.JsonUpdated(c, "ticket cancelled", dto.FromTicketModel(ticket))
}

// Redeem marks a ticket as used.
func (ctl *TicketController) Redeem(c *fiber.Ctx) error {
	ticketID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	ticket, err := ctl.Svc.Redeem(c.UserContext(), ticketID)
	if err != nil {
		if status := purchaseErrorStatus(err); status != 0 {
			return helper.JsonError(c, status, err.Error())
		}
		return helper.JsonDBError(c, err, "ticket")
	}
	return helper.JsonUpdated(c, "ticket redeemed", dto.FromTicketModel(ticket))
}

func (ctl *TicketController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var ticket model.TicketModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&ticket, id).Error; err != nil {
		return helper.JsonDBError(c, err, "ticket")
	}
	return helper.JsonOK(c, "", dto.FromTicketModel(&ticket))
}

// ListByUser pages a user's tickets, newest first, optionally by status.
// Rides on idx_tickets_user.
func (ctl *TicketController) ListByUser(c *fiber.Ctx) error {
	userID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.TicketModel{}).
		Where("ticket_user_id = ?", userID)
	if status := c.Query("status"); status != "" {
		q = q.Where("ticket_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "tickets")
	}

	var tickets []model.TicketModel
	if err := q.Order("ticket_purchased_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&tickets).Error; err != nil {
		return helper.JsonDBError(c, err, "tickets")
	}
	return helper.JsonList(c, "", dto.FromTicketModels(tickets), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

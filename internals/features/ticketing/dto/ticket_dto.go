package dto

import (
	"time"

	"github.com/google/uuid"

	"eventku_backend/internals/features/ticketing/model"
)

type PurchaseTicketsRequest struct {
	TicketUserID     int64   `json:"ticket_user_id" validate:"required,gt=0"`
	Quantity         int     `json:"quantity" validate:"required,gt=0"`
	TicketSectionID  *int64  `json:"ticket_section_id" validate:"omitempty,gt=0"`
	TicketSeatNumber *string `json:"ticket_seat_number" validate:"omitempty,max=20"`
}

type TicketResponse struct {
	TicketID           int64     `json:"ticket_id"`
	TicketTicketTypeID int64     `json:"ticket_ticket_type_id"`
	TicketUserID       int64     `json:"ticket_user_id"`
	TicketSectionID    *int64    `json:"ticket_section_id,omitempty"`
	TicketCode         uuid.UUID `json:"ticket_code"`
	TicketStatus       string    `json:"ticket_status"`
	TicketSeatNumber   *string   `json:"ticket_seat_number,omitempty"`
	TicketPurchasedAt  time.Time `json:"ticket_purchased_at"`
}

func FromTicketModel(m *model.TicketModel) *TicketResponse {
	return &TicketResponse{
		TicketID:           m.TicketID,
		TicketTicketTypeID: m.TicketTicketTypeID,
		TicketUserID:       m.TicketUserID,
		TicketSectionID:    m.TicketSectionID,
		TicketCode:         m.TicketCode,
		TicketStatus:       m.TicketStatus,
		TicketSeatNumber:   m.TicketSeatNumber,
		TicketPurchasedAt:  m.TicketPurchasedAt,
	}
}

func FromTicketModels(models []model.TicketModel) []TicketResponse {
	out := make([]TicketResponse, 0, len(models))
	for i := range models {
		out = append(out, *FromTicketModel(&models[i]))
	}
	return out
}

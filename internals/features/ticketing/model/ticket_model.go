package model

import (
	"time"

	"github.com/google/uuid"

	UserModel "eventku_backend/internals/features/users/model"
	VenueModel "eventku_backend/internals/features/venues/model"
)

// TicketModel is an individual purchased unit. Tickets are financial records:
// all of its references are RESTRICT, nothing may cascade a ticket away.
type TicketModel struct {
	TicketID int64 `gorm:"column:ticket_id;primaryKey;autoIncrement" json:"ticket_id"`

	TicketTicketTypeID int64  `gorm:"column:ticket_ticket_type_id;not null;index:idx_tickets_ticket_type" json:"ticket_ticket_type_id"`
	TicketUserID       int64  `gorm:"column:ticket_user_id;not null;index:idx_tickets_user" json:"ticket_user_id"`
	TicketSectionID    *int64 `gorm:"column:ticket_section_id;index:idx_tickets_section" json:"ticket_section_id,omitempty"`

	// Code the check-in collaborator scans.
	TicketCode uuid.UUID `gorm:"column:ticket_code;type:uuid;not null;uniqueIndex:uq_tickets_code" json:"ticket_code"`

	TicketStatus     string  `gorm:"column:ticket_status;size:20;not null;default:'active';index:idx_tickets_status;check:chk_tickets_status,ticket_status IN ('active','cancelled','redeemed')" json:"ticket_status"`
	TicketSeatNumber *string `gorm:"column:ticket_seat_number;size:20" json:"ticket_seat_number,omitempty"`

	TicketPurchasedAt time.Time `gorm:"column:ticket_purchased_at;autoCreateTime" json:"ticket_purchased_at"`

	TicketType TicketTypeModel                `gorm:"foreignKey:TicketTicketTypeID;references:TicketTypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"ticket_type,omitempty"`
	User       UserModel.UserModel            `gorm:"foreignKey:TicketUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"user,omitempty"`
	Section    *VenueModel.VenueSectionModel  `gorm:"foreignKey:TicketSectionID;references:VenueSectionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"section,omitempty"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

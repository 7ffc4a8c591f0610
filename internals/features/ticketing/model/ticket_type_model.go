package model

import (
	"time"

	EventModel "eventku_backend/internals/features/events/model"
)

// TicketTypeModel is a priced admission category for one event. Owned by the
// event (cascade). QuantitySold is the running inventory counter; it is only
// advanced inside the purchase transaction and can never pass QuantityAvailable.
type TicketTypeModel struct {
	TicketTypeID      int64 `gorm:"column:ticket_type_id;primaryKey;autoIncrement" json:"ticket_type_id"`
	TicketTypeEventID int64 `gorm:"column:ticket_type_event_id;not null;index:idx_ticket_types_event" json:"ticket_type_event_id"`

	TicketTypeName  string  `gorm:"column:ticket_type_name;size:100;not null" json:"ticket_type_name"`
	TicketTypePrice float64 `gorm:"column:ticket_type_price;type:numeric(10,2);not null;check:chk_ticket_types_price,ticket_type_price >= 0" json:"ticket_type_price"`

	TicketTypeQuantityAvailable int `gorm:"column:ticket_type_quantity_available;not null;check:chk_ticket_types_quantity,ticket_type_quantity_available >= 0" json:"ticket_type_quantity_available"`
	TicketTypeQuantitySold      int `gorm:"column:ticket_type_quantity_sold;not null;default:0;check:chk_ticket_types_sold,ticket_type_quantity_sold >= 0 AND ticket_type_quantity_sold <= ticket_type_quantity_available" json:"ticket_type_quantity_sold"`

	TicketTypeSalesStart time.Time `gorm:"column:ticket_type_sales_start;not null" json:"ticket_type_sales_start"`
	TicketTypeSalesEnd   time.Time `gorm:"column:ticket_type_sales_end;not null;check:chk_ticket_types_sales_window,ticket_type_sales_end > ticket_type_sales_start" json:"ticket_type_sales_end"`

	TicketTypeMaxPerUser int `gorm:"column:ticket_type_max_per_user;not null;default:1;check:chk_ticket_types_max_per_user,ticket_type_max_per_user > 0" json:"ticket_type_max_per_user"`

	TicketTypeCreatedAt time.Time `gorm:"column:ticket_type_created_at;autoCreateTime" json:"ticket_type_created_at"`
	TicketTypeUpdatedAt time.Time `gorm:"column:ticket_type_updated_at;autoUpdateTime" json:"ticket_type_updated_at"`

	Event EventModel.EventModel `gorm:"foreignKey:TicketTypeEventID;references:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"event,omitempty"`
}

func (TicketTypeModel) TableName() string {
	return "ticket_types"
}

// Remaining returns the sellable units left.
func (t *TicketTypeModel) Remaining() int {
	return t.TicketTypeQuantityAvailable - t.TicketTypeQuantitySold
}

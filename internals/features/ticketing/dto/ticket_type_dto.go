package dto

import (
	"errors"
	"time"

	"eventku_backend/internals/features/ticketing/model"
)

var (
	ErrSalesEndBeforeStart = errors.New("ticket_type_sales_end must be after ticket_type_sales_start")
	ErrQuantityBelowSold   = errors.New("ticket_type_quantity_available cannot drop below ticket_type_quantity_sold")
)

type TicketTypeRequest struct {
	TicketTypeName  string  `json:"ticket_type_name" validate:"required,max=100"`
	TicketTypePrice float64 `json:"ticket_type_price" validate:"gte=0"`

	TicketTypeQuantityAvailable int `json:"ticket_type_quantity_available" validate:"gte=0"`

	TicketTypeSalesStart time.Time `json:"ticket_type_sales_start" validate:"required"`
	TicketTypeSalesEnd   time.Time `json:"ticket_type_sales_end" validate:"required"`

	TicketTypeMaxPerUser int `json:"ticket_type_max_per_user" validate:"required,gt=0"`
}

type TicketTypeResponse struct {
	TicketTypeID      int64 `json:"ticket_type_id"`
	TicketTypeEventID int64 `json:"ticket_type_event_id"`

	TicketTypeName  string  `json:"ticket_type_name"`
	TicketTypePrice float64 `json:"ticket_type_price"`

	TicketTypeQuantityAvailable int `json:"ticket_type_quantity_available"`
	TicketTypeQuantitySold      int `json:"ticket_type_quantity_sold"`
	TicketTypeRemaining         int `json:"ticket_type_remaining"`

	TicketTypeSalesStart time.Time `json:"ticket_type_sales_start"`
	TicketTypeSalesEnd   time.Time `json:"ticket_type_sales_end"`

	TicketTypeMaxPerUser int `json:"ticket_type_max_per_user"`
}

func (r *TicketTypeRequest) ToModel(eventID int64) (*model.TicketTypeModel, error) {
	if !r.TicketTypeSalesEnd.After(r.TicketTypeSalesStart) {
		return nil, ErrSalesEndBeforeStart
	}
	return &model.TicketTypeModel{
		TicketTypeEventID:           eventID,
		TicketTypeName:              r.TicketTypeName,
		TicketTypePrice:             r.TicketTypePrice,
		TicketTypeQuantityAvailable: r.TicketTypeQuantityAvailable,
		TicketTypeSalesStart:        r.TicketTypeSalesStart,
		TicketTypeSalesEnd:          r.TicketTypeSalesEnd,
		TicketTypeMaxPerUser:        r.TicketTypeMaxPerUser,
	}, nil
}

// Apply replaces the type's fields, re-checking the sales window and keeping
// the availability from falling under units already sold.
func (r *TicketTypeRequest) Apply(m *model.TicketTypeModel) error {
	if !r.TicketTypeSalesEnd.After(r.TicketTypeSalesStart) {
		return ErrSalesEndBeforeStart
	}
	if r.TicketTypeQuantityAvailable < m.TicketTypeQuantitySold {
		return ErrQuantityBelowSold
	}
	m.TicketTypeName = r.TicketTypeName
	m.TicketTypePrice = r.TicketTypePrice
	m.TicketTypeQuantityAvailable = r.TicketTypeQuantityAvailable
	m.TicketTypeSalesStart = r.TicketTypeSalesStart
	m.TicketTypeSalesEnd = r.TicketTypeSalesEnd
	m.TicketTypeMaxPerUser = r.TicketTypeMaxPerUser
	return nil
}

func FromTicketTypeModel(m *model.TicketTypeModel) *TicketTypeResponse {
	return &TicketTypeResponse{
		TicketTypeID:                m.TicketTypeID,
		TicketTypeEventID:           m.TicketTypeEventID,
		TicketTypeName:              m.TicketTypeName,
		TicketTypePrice:             m.TicketTypePrice,
		TicketTypeQuantityAvailable: m.TicketTypeQuantityAvailable,
		TicketTypeQuantitySold:      m.TicketTypeQuantitySold,
		TicketTypeRemaining:         m.Remaining(),
		TicketTypeSalesStart:        m.TicketTypeSalesStart,
		TicketTypeSalesEnd:          m.TicketTypeSalesEnd,
		TicketTypeMaxPerUser:        m.TicketTypeMaxPerUser,
	}
}

func FromTicketTypeModels(models []model.TicketTypeModel) []TicketTypeResponse {
	out := make([]TicketTypeResponse, 0, len(models))
	for i := range models {
		out = append(out, *FromTicketTypeModel(&models[i]))
	}
	return out
}

package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/features/ticketing/dto"
	"eventku_backend/internals/features/ticketing/model"
	helper "eventku_backend/internals/helpers"
)

type TicketTypeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTicketTypeController(db *gorm.DB, v *validator.Validate) *TicketTypeController {
	return &TicketTypeController{DB: db, Validate: v}
}

func (ctl *TicketTypeController) Create(c *fiber.Ctx) error {
	eventID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req dto.TicketTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	tt, err := req.ToModel(eventID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(tt).Error; err != nil {
		return helper.JsonDBError(c, err, "ticket type")
	}
	return helper.JsonCreated(c, "ticket type created", dto.FromTicketTypeModel(tt))
}

func (ctl *TicketTypeController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var tt model.TicketTypeModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&tt, id).Error; err != nil {
		return helper.JsonDBError(c, err, "ticket type")
	}
	return helper.JsonOK(c, "", dto.FromTicketTypeModel(&tt))
}

func (ctl *TicketTypeController) ListByEvent(c *fiber.Ctx) error {
	eventID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var types []model.TicketTypeModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("ticket_type_event_id = ?", eventID).
		Order("ticket_type_price").
		Find(&types).Error; err != nil {
		return helper.JsonDBError(c, err, "ticket types")
	}
	return helper.JsonOK(c, "", dto.FromTicketTypeModels(types))
}

func (ctl *TicketTypeController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var tt model.TicketTypeModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&tt, id).Error; err != nil {
		return helper.JsonDBError(c, err, "ticket type")
	}

	var req dto.TicketTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if err := req.Apply(&tt); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&tt).Error; err != nil {
		return helper.JsonDBError(c, err, "ticket type")
	}
	return helper.JsonUpdated(c, "ticket type updated", dto.FromTicketTypeModel(&tt))
}

// Delete removes a ticket type. Sold tickets reference it with RESTRICT, so
// this fails with 409 once anything has been purchased.
func (ctl *TicketTypeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.TicketTypeModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "ticket type")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "ticket type not found")
	}
	return helper.JsonDeleted(c, "ticket type deleted", fiber.Map{"ticket_type_id": id})
}

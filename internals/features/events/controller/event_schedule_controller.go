package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/features/events/dto"
	"eventku_backend/internals/features/events/model"
	helper "eventku_backend/internals/helpers"
)

type EventScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEventScheduleController(db *gorm.DB, v *validator.Validate) *EventScheduleController {
	return &EventScheduleController{DB: db, Validate: v}
}

func (ctl *EventScheduleController) Create(c *fiber.Ctx) error {
	eventID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req dto.EventScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	session, err := req.ToModel(eventID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(session).Error; err != nil {
		return helper.JsonDBError(c, err, "event schedule")
	}
	return helper.JsonCreated(c, "event schedule created", dto.FromEventScheduleModel(session))
}

func (ctl *EventScheduleController) ListByEvent(c *fiber.Ctx) error {
	eventID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var sessions []model.EventScheduleModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("event_schedule_event_id = ?", eventID).
		Order("event_schedule_start_time").
		Find(&sessions).Error; err != nil {
		return helper.JsonDBError(c, err, "event schedules")
	}
	return helper.JsonOK(c, "", dto.FromEventScheduleModels(sessions))
}

func (ctl *EventScheduleController) Update(c *fiber.Ctx) error {
	scheduleID, err := helper.ParseIDParam(c, "scheduleId")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var session model.EventScheduleModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&session, scheduleID).Error; err != nil {
		return helper.JsonDBError(c, err, "event schedule")
	}

	var req dto.EventScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if err := req.Apply(&session); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&session).Error; err != nil {
		return helper.JsonDBError(c, err, "event schedule")
	}
	return helper.JsonUpdated(c, "event schedule updated", dto.FromEventScheduleModel(&session))
}

func (ctl *EventScheduleController) Delete(c *fiber.Ctx) error {
	scheduleID, err := helper.ParseIDParam(c, "scheduleId")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.EventScheduleModel{}, scheduleID)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "event schedule")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "event schedule not found")
	}
	return helper.JsonDeleted(c, "event schedule deleted", fiber.Map{"event_schedule_id": scheduleID})
}

package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/features/sponsorships/dto"
	"eventku_backend/internals/features/sponsorships/model"
	helper "eventku_backend/internals/helpers"
)

type EventSponsorController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEventSponsorController(db *gorm.DB, v *validator.Validate) *EventSponsorController {
	return &EventSponsorController{DB: db, Validate: v}
}

// Attach links a sponsor to an event at a tier. The composite key keeps a
// sponsor from being attached to the same event twice.
func (ctl *EventSponsorController) Attach(c *fiber.Ctx) error {
	eventID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req dto.AttachSponsorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	link := req.ToModel(eventID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(link).Error; err != nil {
		return helper.JsonDBError(c, err, "event sponsor")
	}
	return helper.JsonCreated(c, "sponsor attached", dto.FromEventSponsorModel(link))
}

func (ctl *EventSponsorController) ListByEvent(c *fiber.Ctx) error {
	eventID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var links []model.EventSponsorModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("Sponsor").Preload("Tier").
		Where("event_sponsor_event_id = ?", eventID).
		Order("event_sponsor_amount DESC").
		Find(&links).Error; err != nil {
		return helper.JsonDBError(c, err, "event sponsors")
	}
	return helper.JsonOK(c, "", dto.FromEventSponsorModels(links))
}

func (ctl *EventSponsorController) Update(c *fiber.Ctx) error {
	eventID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	sponsorID, err := helper.ParseIDParam(c, "sponsorId")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var link model.EventSponsorModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("event_sponsor_event_id = ? AND event_sponsor_sponsor_id = ?", eventID, sponsorID).
		First(&link).Error; err != nil {
		return helper.JsonDBError(c, err, "event sponsor")
	}

	var req dto.UpdateEventSponsorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	req.Apply(&link)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&link).Error; err != nil {
		return helper.JsonDBError(c, err, "event sponsor")
	}
	return helper.JsonUpdated(c, "event sponsor updated", dto.FromEventSponsorModel(&link))
}

func (ctl *EventSponsorController) Detach(c *fiber.Ctx) error {
	eventID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	sponsorID, err := helper.ParseIDParam(c, "sponsorId")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("event_sponsor_event_id = ? AND event_sponsor_sponsor_id = ?", eventID, sponsorID).
		Delete(&model.EventSponsorModel{})
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "event sponsor")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "event sponsor not found")
	}
	return helper.JsonDeleted(c, "sponsor detached", fiber.Map{
		"event_sponsor_event_id":   eventID,
		"event_sponsor_sponsor_id": sponsorID,
	})
}

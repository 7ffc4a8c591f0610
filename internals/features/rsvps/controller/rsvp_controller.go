package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/features/rsvps/dto"
	"eventku_backend/internals/features/rsvps/model"
	helper "eventku_backend/internals/helpers"
)

type RSVPController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRSVPController(db *gorm.DB, v *validator.Validate) *RSVPController {
	return &RSVPController{DB: db, Validate: v}
}

// Create records one RSVP per (event, user); a second attempt hits
// uq_rsvps_event_user and comes back 409.
func (ctl *RSVPController) Create(c *fiber.Ctx) error {
	eventID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req dto.CreateRSVPRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	rsvp := req.ToModel(eventID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(rsvp).Error; err != nil {
		return helper.JsonDBError(c, err, "rsvp")
	}
	return helper.JsonCreated(c, "rsvp recorded", dto.FromRSVPModel(rsvp))
}

func (ctl *RSVPController) ListByEvent(c *fiber.Ctx) error {
	eventID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.RSVPModel{}).
		Where("rsvp_event_id = ?", eventID)
	if response := c.Query("response"); response != "" {
		q = q.Where("rsvp_response = ?", response)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "rsvps")
	}

	var rsvps []model.RSVPModel
	if err := q.Order("rsvp_responded_at").Offset(paging.Offset).Limit(paging.Limit).Find(&rsvps).Error; err != nil {
		return helper.JsonDBError(c, err, "rsvps")
	}
	return helper.JsonList(c, "", dto.FromRSVPModels(rsvps), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *RSVPController) Update(c *fiber.Ctx) error {
	rsvpID, err := helper.ParseIDParam(c, "rsvpId")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var rsvp model.RSVPModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&rsvp, rsvpID).Error; err != nil {
		return helper.JsonDBError(c, err, "rsvp")
	}

	var req dto.UpdateRSVPRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	req.Apply(&rsvp)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&rsvp).Error; err != nil {
		return helper.JsonDBError(c, err, "rsvp")
	}
	return helper.JsonUpdated(c, "rsvp updated", dto.FromRSVPModel(&rsvp))
}

func (ctl *RSVPController) Delete(c *fiber.Ctx) error {
	rsvpID, err := helper.ParseIDParam(c, "rsvpId")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.RSVPModel{}, rsvpID)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "rsvp")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "rsvp not found")
	}
	return helper.JsonDeleted(c, "rsvp deleted", fiber.Map{"rsvp_id": rsvpID})
}

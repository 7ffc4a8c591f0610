package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/features/venues/dto"
	"eventku_backend/internals/features/venues/model"
	helper "eventku_backend/internals/helpers"
)

type VenueSectionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewVenueSectionController(db *gorm.DB, v *validator.Validate) *VenueSectionController {
	return &VenueSectionController{DB: db, Validate: v}
}

func (ctl *VenueSectionController) Create(c *fiber.Ctx) error {
	venueID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req dto.VenueSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	section := req.ToModel(venueID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(section).Error; err != nil {
		return helper.JsonDBError(c, err, "venue section")
	}
	return helper.JsonCreated(c, "venue section created", dto.FromVenueSectionModel(section))
}

func (ctl *VenueSectionController) ListByVenue(c *fiber.Ctx) error {
	venueID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var sections []model.VenueSectionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("venue_section_venue_id = ?", venueID).
		Order("venue_section_id").
		Find(&sections).Error; err != nil {
		return helper.JsonDBError(c, err, "venue sections")
	}
	return helper.JsonOK(c, "", dto.FromVenueSectionModels(sections))
}

func (ctl *VenueSectionController) Update(c *fiber.Ctx) error {
	sectionID, err := helper.ParseIDParam(c, "sectionId")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var section model.VenueSectionModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&section, sectionID).Error; err != nil {
		return helper.JsonDBError(c, err, "venue section")
	}

	var req dto.VenueSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	req.Apply(&section)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&section).Error; err != nil {
		return helper.JsonDBError(c, err, "venue section")
	}
	return helper.JsonUpdated(c, "venue section updated", dto.FromVenueSectionModel(&section))
}

func (ctl *VenueSectionController) Delete(c *fiber.Ctx) error {
	sectionID, err := helper.ParseIDParam(c, "sectionId")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.VenueSectionModel{}, sectionID)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "venue section")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "venue section not found")
	}
	return helper.JsonDeleted(c, "venue section deleted", fiber.Map{"venue_section_id": sectionID})
}

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

type SponsorController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSponsorController(db *gorm.DB, v *validator.Validate) *SponsorController {
	return &SponsorController{DB: db, Validate: v}
}

func (ctl *SponsorController) Create(c *fiber.Ctx) error {
	var req dto.SponsorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	sponsor := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(sponsor).Error; err != nil {
		return helper.JsonDBError(c, err, "sponsor")
	}
	return helper.JsonCreated(c, "sponsor created", dto.FromSponsorModel(sponsor))
}

func (ctl *SponsorController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var sponsor model.SponsorModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&sponsor, id).Error; err != nil {
		return helper.JsonDBError(c, err, "sponsor")
	}
	return helper.JsonOK(c, "", dto.FromSponsorModel(&sponsor))
}

func (ctl *SponsorController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.SponsorModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "sponsors")
	}

	var sponsors []model.SponsorModel
	if err := q.Order("sponsor_name").Offset(paging.Offset).Limit(paging.Limit).Find(&sponsors).Error; err != nil {
		return helper.JsonDBError(c, err, "sponsors")
	}
	return helper.JsonList(c, "", dto.FromSponsorModels(sponsors), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *SponsorController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var sponsor model.SponsorModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&sponsor, id).Error; err != nil {
		return helper.JsonDBError(c, err, "sponsor")
	}

	var req dto.SponsorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	req.Apply(&sponsor)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&sponsor).Error; err != nil {
		return helper.JsonDBError(c, err, "sponsor")
	}
	return helper.JsonUpdated(c, "sponsor updated", dto.FromSponsorModel(&sponsor))
}

// Delete is blocked (409) while the sponsor still backs any event.
func (ctl *SponsorController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.SponsorModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "sponsor")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "sponsor not found")
	}
	return helper.JsonDeleted(c, "sponsor deleted", fiber.Map{"sponsor_id": id})
}

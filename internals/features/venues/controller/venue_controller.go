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

type VenueController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewVenueController(db *gorm.DB, v *validator.Validate) *VenueController {
	return &VenueController{DB: db, Validate: v}
}

func (ctl *VenueController) Create(c *fiber.Ctx) error {
	var req dto.CreateVenueRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	venue := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(venue).Error; err != nil {
		return helper.JsonDBError(c, err, "venue")
	}
	return helper.JsonCreated(c, "venue created", dto.FromVenueModel(venue))
}

func (ctl *VenueController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var venue model.VenueModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&venue, id).Error; err != nil {
		return helper.JsonDBError(c, err, "venue")
	}
	return helper.JsonOK(c, "", dto.FromVenueModel(&venue))
}

func (ctl *VenueController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.VenueModel{})
	if city := c.Query("city"); city != "" {
		q = q.Where("venue_city = ?", city)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "venues")
	}

	var venues []model.VenueModel
	if err := q.Order("venue_id").Offset(paging.Offset).Limit(paging.Limit).Find(&venues).Error; err != nil {
		return helper.JsonDBError(c, err, "venues")
	}
	return helper.JsonList(c, "", dto.FromVenueModels(venues), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *VenueController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var venue model.VenueModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&venue, id).Error; err != nil {
		return helper.JsonDBError(c, err, "venue")
	}

	var req dto.UpdateVenueRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	req.Apply(&venue)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&venue).Error; err != nil {
		return helper.JsonDBError(c, err, "venue")
	}
	return helper.JsonUpdated(c, "venue updated", dto.FromVenueModel(&venue))
}

// Delete removes a venue; its sections cascade away. Blocked while events
// still point at the venue.
func (ctl *VenueController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.VenueModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "venue")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "venue not found")
	}
	return helper.JsonDeleted(c, "venue deleted", fiber.Map{"venue_id": id})
}

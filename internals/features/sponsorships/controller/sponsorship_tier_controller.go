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

type SponsorshipTierController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSponsorshipTierController(db *gorm.DB, v *validator.Validate) *SponsorshipTierController {
	return &SponsorshipTierController{DB: db, Validate: v}
}

func (ctl *SponsorshipTierController) Create(c *fiber.Ctx) error {
	var req dto.SponsorshipTierRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	tier := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(tier).Error; err != nil {
		return helper.JsonDBError(c, err, "sponsorship tier")
	}
	return helper.JsonCreated(c, "sponsorship tier created", dto.FromSponsorshipTierModel(tier))
}

func (ctl *SponsorshipTierController) List(c *fiber.Ctx) error {
	var tiers []model.SponsorshipTierModel
	if err := ctl.DB.WithContext(c.UserContext()).Order("sponsorship_tier_min_amount DESC").Find(&tiers).Error; err != nil {
		return helper.JsonDBError(c, err, "sponsorship tiers")
	}
	return helper.JsonOK(c, "", dto.FromSponsorshipTierModels(tiers))
}

// Delete is blocked (409) while any event sponsorship sits on the tier.
func (ctl *SponsorshipTierController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.SponsorshipTierModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "sponsorship tier")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "sponsorship tier not found")
	}
	return helper.JsonDeleted(c, "sponsorship tier deleted", fiber.Map{"sponsorship_tier_id": id})
}

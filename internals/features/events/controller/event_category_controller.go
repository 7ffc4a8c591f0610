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

type EventCategoryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEventCategoryController(db *gorm.DB, v *validator.Validate) *EventCategoryController {
	return &EventCategoryController{DB: db, Validate: v}
}

func (ctl *EventCategoryController) Create(c *fiber.Ctx) error {
	var req dto.EventCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	category := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(category).Error; err != nil {
		return helper.JsonDBError(c, err, "event category")
	}
	return helper.JsonCreated(c, "event category created", dto.FromEventCategoryModel(category))
}

func (ctl *EventCategoryController) List(c *fiber.Ctx) error {
	var categories []model.EventCategoryModel
	if err := ctl.DB.WithContext(c.UserContext()).Order("event_category_id").Find(&categories).Error; err != nil {
		return helper.JsonDBError(c, err, "event categories")
	}
	return helper.JsonOK(c, "", dto.FromEventCategoryModels(categories))
}

// Delete is blocked (409) while any event still uses the category.
func (ctl *EventCategoryController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.EventCategoryModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "event category")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "event category not found")
	}
	return helper.JsonDeleted(c, "event category deleted", fiber.Map{"event_category_id": id})
}

package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/features/users/dto"
	"eventku_backend/internals/features/users/model"
	helper "eventku_backend/internals/helpers"
)

type RoleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRoleController(db *gorm.DB, v *validator.Validate) *RoleController {
	return &RoleController{DB: db, Validate: v}
}

func (ctl *RoleController) Create(c *fiber.Ctx) error {
	var req dto.RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	role := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(role).Error; err != nil {
		return helper.JsonDBError(c, err, "role")
	}
	return helper.JsonCreated(c, "role created", dto.FromRoleModel(role))
}

func (ctl *RoleController) List(c *fiber.Ctx) error {
	var roles []model.RoleModel
	if err := ctl.DB.WithContext(c.UserContext()).Order("role_id").Find(&roles).Error; err != nil {
		return helper.JsonDBError(c, err, "roles")
	}
	return helper.JsonOK(c, "", dto.FromRoleModels(roles))
}

// Delete removes a role; assignments cascade away with it.
func (ctl *RoleController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.RoleModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "role")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "role not found")
	}
	return helper.JsonDeleted(c, "role deleted", fiber.Map{"role_id": id})
}

// AssignRole attaches a role to a user. Duplicate assignment → 409.
func (ctl *RoleController) AssignRole(c *fiber.Ctx) error {
	userID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req dto.AssignRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	assignment := &model.UserRoleModel{
		UserRoleUserID: userID,
		UserRoleRoleID: req.RoleID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(assignment).Error; err != nil {
		return helper.JsonDBError(c, err, "role assignment")
	}
	return helper.JsonCreated(c, "role assigned", dto.FromUserRoleModel(assignment))
}

func (ctl *RoleController) RevokeRole(c *fiber.Ctx) error {
	userID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	roleID, err := helper.ParseIDParam(c, "roleId")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("user_role_user_id = ? AND user_role_role_id = ?", userID, roleID).
		Delete(&model.UserRoleModel{})
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "role assignment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "role assignment not found")
	}
	return helper.JsonDeleted(c, "role revoked", fiber.Map{"user_id": userID, "role_id": roleID})
}

func (ctl *RoleController) ListUserRoles(c *fiber.Ctx) error {
	userID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var assignments []model.UserRoleModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("Role").
		Where("user_role_user_id = ?", userID).
		Find(&assignments).Error; err != nil {
		return helper.JsonDBError(c, err, "role assignments")
	}
	return helper.JsonOK(c, "", dto.FromUserRoleModels(assignments))
}

package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eventku_backend/internals/features/users/dto"
	"eventku_backend/internals/features/users/model"
	helper "eventku_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB, v *validator.Validate) *UserController {
	return &UserController{DB: db, Validate: v}
}

func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "failed to hash password")
	}

	user := req.ToModel(string(hash))
	if err := ctl.DB.WithContext(c.UserContext()).Create(user).Error; err != nil {
		return helper.JsonDBError(c, err, "user")
	}
	return helper.JsonCreated(c, "user created", dto.FromUserModel(user))
}

func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, id).Error; err != nil {
		return helper.JsonDBError(c, err, "user")
	}
	return helper.JsonOK(c, "", dto.FromUserModel(&user))
}

func (ctl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.UserModel{})
	if c.Query("active") == "true" {
		q = q.Where("is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "users")
	}

	var users []model.UserModel
	if err := q.Order("id").Offset(paging.Offset).Limit(paging.Limit).Find(&users).Error; err != nil {
		return helper.JsonDBError(c, err, "users")
	}
	return helper.JsonList(c, "", dto.FromUserModels(users), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, id).Error; err != nil {
		return helper.JsonDBError(c, err, "user")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, "failed to hash password")
		}
		user.PasswordHash = string(hash)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&user).Error; err != nil {
		return helper.JsonDBError(c, err, "user")
	}
	return helper.JsonUpdated(c, "user updated", dto.FromUserModel(&user))
}

// Deactivate is the supported retirement path for referenced users: the row
// stays so organizer/buyer/attendee references keep resolving.
func (ctl *UserController) Deactivate(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "user not found")
	}
	return helper.JsonUpdated(c, "user deactivated", fiber.Map{"id": id, "is_active": false})
}

// Delete hard-deletes a user. Blocked (409) while any event, ticket, RSVP,
// feedback or notification still references the row; role assignments cascade.
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.UserModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "user not found")
	}
	return helper.JsonDeleted(c, "user deleted", fiber.Map{"id": id})
}

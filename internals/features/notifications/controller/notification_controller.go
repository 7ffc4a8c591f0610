package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/features/notifications/dto"
	"eventku_backend/internals/features/notifications/model"
	helper "eventku_backend/internals/helpers"
)

type NotificationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNotificationController(db *gorm.DB, v *validator.Validate) *NotificationController {
	return &NotificationController{DB: db, Validate: v}
}

func (ctl *NotificationController) Create(c *fiber.Ctx) error {
	var req dto.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	notification := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(notification).Error; err != nil {
		return helper.JsonDBError(c, err, "notification")
	}
	return helper.JsonCreated(c, "notification created", dto.FromNotificationModel(notification))
}

// ListByUser pages a user's inbox, newest first. ?unread=true narrows to
// unread rows. Rides on idx_notifications_user.
func (ctl *NotificationController) ListByUser(c *fiber.Ctx) error {
	userID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID)
	if c.Query("unread") == "true" {
		q = q.Where("notification_is_read = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "notifications")
	}

	var notifications []model.NotificationModel
	if err := q.Order("notification_sent_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&notifications).Error; err != nil {
		return helper.JsonDBError(c, err, "notifications")
	}
	return helper.JsonList(c, "", dto.FromNotificationModels(notifications), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).Model(&model.NotificationModel{}).
		Where("notification_id = ?", id).
		Update("notification_is_read", true)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "notification not found")
	}
	return helper.JsonUpdated(c, "notification marked read", fiber.Map{"notification_id": id})
}

// MarkAllRead flips every unread notification for a user.
func (ctl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = ?", userID, false).
		Update("notification_is_read", true)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "notifications")
	}
	return helper.JsonUpdated(c, "notifications marked read", fiber.Map{
		"notification_user_id": userID,
		"updated":              res.RowsAffected,
	})
}

func (ctl *NotificationController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.NotificationModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "notification not found")
	}
	return helper.JsonDeleted(c, "notification deleted", fiber.Map{"notification_id": id})
}

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

type EventFeedbackController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEventFeedbackController(db *gorm.DB, v *validator.Validate) *EventFeedbackController {
	return &EventFeedbackController{DB: db, Validate: v}
}

// Create stores one rating per (event, user). Ratings outside 1..5 never
// reach the database.
func (ctl *EventFeedbackController) Create(c *fiber.Ctx) error {
	eventID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req dto.CreateEventFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	feedback := req.ToModel(eventID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(feedback).Error; err != nil {
		return helper.JsonDBError(c, err, "event feedback")
	}
	return helper.JsonCreated(c, "feedback recorded", dto.FromEventFeedbackModel(feedback))
}

func (ctl *EventFeedbackController) ListByEvent(c *fiber.Ctx) error {
	eventID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.EventFeedbackModel{}).
		Where("event_feedback_event_id = ?", eventID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "event feedback")
	}

	var feedback []model.EventFeedbackModel
	if err := q.Order("event_feedback_created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&feedback).Error; err != nil {
		return helper.JsonDBError(c, err, "event feedback")
	}
	return helper.JsonList(c, "", dto.FromEventFeedbackModels(feedback), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// Summary returns the average rating and count for an event.
func (ctl *EventFeedbackController) Summary(c *fiber.Ctx) error {
	eventID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	summary := dto.EventFeedbackSummary{EventID: eventID}
	err = ctl.DB.WithContext(c.UserContext()).Model(&model.EventFeedbackModel{}).
		Where("event_feedback_event_id = ?", eventID).
		Select("COALESCE(AVG(event_feedback_rating), 0) AS average_rating, COUNT(*) AS feedback_count").
		Row().Scan(&summary.AverageRating, &summary.FeedbackCount)
	if err != nil {
		return helper.JsonDBError(c, err, "event feedback")
	}
	return helper.JsonOK(c, "", summary)
}

func (ctl *EventFeedbackController) Update(c *fiber.Ctx) error {
	feedbackID, err := helper.ParseIDParam(c, "feedbackId")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var feedback model.EventFeedbackModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&feedback, feedbackID).Error; err != nil {
		return helper.JsonDBError(c, err, "event feedback")
	}

	var req dto.UpdateEventFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	req.Apply(&feedback)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&feedback).Error; err != nil {
		return helper.JsonDBError(c, err, "event feedback")
	}
	return helper.JsonUpdated(c, "feedback updated", dto.FromEventFeedbackModel(&feedback))
}

func (ctl *EventFeedbackController) Delete(c *fiber.Ctx) error {
	feedbackID, err := helper.ParseIDParam(c, "feedbackId")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.EventFeedbackModel{}, feedbackID)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "event feedback")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "event feedback not found")
	}
	return helper.JsonDeleted(c, "feedback deleted", fiber.Map{"event_feedback_id": feedbackID})
}

package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/constants"
	"eventku_backend/internals/features/events/dto"
	"eventku_backend/internals/features/events/model"
	helper "eventku_backend/internals/helpers"
)

type EventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEventController(db *gorm.DB, v *validator.Validate) *EventController {
	return &EventController{DB: db, Validate: v}
}

// Valid lifecycle moves. Cancelled and completed are terminal.
var allowedStatusTransitions = map[string][]string{
	constants.EventStatusDraft:     {constants.EventStatusPublished, constants.EventStatusCancelled},
	constants.EventStatusPublished: {constants.EventStatusCancelled, constants.EventStatusCompleted},
}

func canTransition(from, to string) bool {
	for _, next := range allowedStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (ctl *EventController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	event, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(event).Error; err != nil {
		return helper.JsonDBError(c, err, "event")
	}
	return helper.JsonCreated(c, "event created", dto.FromEventModel(event))
}

func (ctl *EventController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var event model.EventModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&event, id).Error; err != nil {
		return helper.JsonDBError(c, err, "event")
	}
	return helper.JsonOK(c, "", dto.FromEventModel(&event))
}

// List filters by status and/or start/end of a datetime window. Both paths
// ride on idx_events_status and idx_events_datetime.
func (ctl *EventController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.EventModel{})

	if status := c.Query("status"); status != "" {
		if !constants.IsValidEventStatus(status) {
			return helper.JsonError(c, http.StatusBadRequest, dto.ErrUnknownStatus.Error())
		}
		q = q.Where("event_status = ?", status)
	}

	from, err := helper.ParseDateQuery(c, "from")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	to, err := helper.ParseDateQuery(c, "to")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if from != nil {
		q = q.Where("event_start_datetime >= ?", *from)
	}
	if to != nil {
		q = q.Where("event_end_datetime <= ?", *to)
	}
	if organizer := c.Query("organizer_id"); organizer != "" {
		q = q.Where("event_organizer_id = ?", organizer)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "events")
	}

	var events []model.EventModel
	if err := q.Order("event_start_datetime").Offset(paging.Offset).Limit(paging.Limit).Find(&events).Error; err != nil {
		return helper.JsonDBError(c, err, "events")
	}
	return helper.JsonList(c, "", dto.FromEventModels(events), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *EventController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var event model.EventModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&event, id).Error; err != nil {
		return helper.JsonDBError(c, err, "event")
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if err := req.Apply(&event); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&event).Error; err != nil {
		return helper.JsonDBError(c, err, "event")
	}
	return helper.JsonUpdated(c, "event updated", dto.FromEventModel(&event))
}

// UpdateStatus moves the event through its lifecycle.
func (ctl *EventController) UpdateStatus(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req dto.UpdateEventStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var event model.EventModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&event, id).Error; err != nil {
		return helper.JsonDBError(c, err, "event")
	}

	if !canTransition(event.EventStatus, req.EventStatus) {
		return helper.JsonError(c, http.StatusConflict,
			"cannot transition event from "+event.EventStatus+" to "+req.EventStatus)
	}

	event.EventStatus = req.EventStatus
	if err := ctl.DB.WithContext(c.UserContext()).Save(&event).Error; err != nil {
		return helper.JsonDBError(c, err, "event")
	}
	return helper.JsonUpdated(c, "event status updated", dto.FromEventModel(&event))
}

// Delete removes an event. Schedules, ticket types, RSVPs, feedback and
// sponsorship rows cascade; notifications keep their row with the event
// reference cleared. Blocked while undeletable tickets hang off a ticket type.
func (ctl *EventController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.EventModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "event")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "event not found")
	}
	return helper.JsonDeleted(c, "event deleted", fiber.Map{"event_id": id})
}

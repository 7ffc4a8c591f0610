package dto

import (
	"time"

	"eventku_backend/internals/features/notifications/model"
)

type CreateNotificationRequest struct {
	NotificationUserID  int64  `json:"notification_user_id" validate:"required,gt=0"`
	NotificationEventID *int64 `json:"notification_event_id" validate:"omitempty,gt=0"`

	NotificationTitle string `json:"notification_title" validate:"required,max=200"`
	NotificationBody  string `json:"notification_body" validate:"required"`
	NotificationType  string `json:"notification_type" validate:"required,oneof=reminder update promotional system"`
}

type NotificationResponse struct {
	NotificationID      int64  `json:"notification_id"`
	NotificationUserID  int64  `json:"notification_user_id"`
	NotificationEventID *int64 `json:"notification_event_id,omitempty"`

	NotificationTitle string `json:"notification_title"`
	NotificationBody  string `json:"notification_body"`
	NotificationType  string `json:"notification_type"`

	NotificationIsRead bool      `json:"notification_is_read"`
	NotificationSentAt time.Time `json:"notification_sent_at"`
}

func (r *CreateNotificationRequest) ToModel() *model.NotificationModel {
	return &model.NotificationModel{
		NotificationUserID:  r.NotificationUserID,
		NotificationEventID: r.NotificationEventID,
		NotificationTitle:   r.NotificationTitle,
		NotificationBody:    r.NotificationBody,
		NotificationType:    r.NotificationType,
	}
}

func FromNotificationModel(m *model.NotificationModel) *NotificationResponse {
	return &NotificationResponse{
		NotificationID:      m.NotificationID,
		NotificationUserID:  m.NotificationUserID,
		NotificationEventID: m.NotificationEventID,
		NotificationTitle:   m.NotificationTitle,
		NotificationBody:    m.NotificationBody,
		NotificationType:    m.NotificationType,
		NotificationIsRead:  m.NotificationIsRead,
		NotificationSentAt:  m.NotificationSentAt,
	}
}

func FromNotificationModels(models []model.NotificationModel) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(models))
	for i := range models {
		out = append(out, *FromNotificationModel(&models[i]))
	}
	return out
}

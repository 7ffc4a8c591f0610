package model

import (
	"time"

	EventModel "eventku_backend/internals/features/events/model"
	UserModel "eventku_backend/internals/features/users/model"
)

// NotificationModel is a message delivered to a user, optionally tied to an
// event. Notifications outlive their triggering event: the event reference is
// cleared (SET NULL) when the event is deleted.
type NotificationModel struct {
	NotificationID int64 `gorm:"column:notification_id;primaryKey;autoIncrement" json:"notification_id"`

	NotificationUserID  int64  `gorm:"column:notification_user_id;not null;index:idx_notifications_user" json:"notification_user_id"`
	NotificationEventID *int64 `gorm:"column:notification_event_id;index:idx_notifications_event" json:"notification_event_id,omitempty"`

	NotificationTitle string `gorm:"column:notification_title;size:200;not null" json:"notification_title"`
	NotificationBody  string `gorm:"column:notification_body;type:text;not null" json:"notification_body"`
	NotificationType  string `gorm:"column:notification_type;size:20;not null;check:chk_notifications_type,notification_type IN ('reminder','update','promotional','system')" json:"notification_type"`

	NotificationIsRead bool      `gorm:"column:notification_is_read;not null;default:false" json:"notification_is_read"`
	NotificationSentAt time.Time `gorm:"column:notification_sent_at;autoCreateTime" json:"notification_sent_at"`

	User  UserModel.UserModel    `gorm:"foreignKey:NotificationUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"user,omitempty"`
	Event *EventModel.EventModel `gorm:"foreignKey:NotificationEventID;references:EventID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"event,omitempty"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

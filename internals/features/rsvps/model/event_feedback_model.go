package model

import (
	"time"

	EventModel "eventku_backend/internals/features/events/model"
	UserModel "eventku_backend/internals/features/users/model"
)

// EventFeedbackModel is a user's rating for an event. Rating is an integer
// in [1,5]; at most one row per (event, user).
type EventFeedbackModel struct {
	EventFeedbackID int64 `gorm:"column:event_feedback_id;primaryKey;autoIncrement" json:"event_feedback_id"`

	EventFeedbackEventID int64 `gorm:"column:event_feedback_event_id;not null;uniqueIndex:uq_event_feedbacks_event_user,priority:1" json:"event_feedback_event_id"`
	EventFeedbackUserID  int64 `gorm:"column:event_feedback_user_id;not null;uniqueIndex:uq_event_feedbacks_event_user,priority:2" json:"event_feedback_user_id"`

	EventFeedbackRating  int     `gorm:"column:event_feedback_rating;not null;check:chk_event_feedbacks_rating,event_feedback_rating BETWEEN 1 AND 5" json:"event_feedback_rating"`
	EventFeedbackComment *string `gorm:"column:event_feedback_comment;type:text" json:"event_feedback_comment,omitempty"`

	EventFeedbackCreatedAt time.Time `gorm:"column:event_feedback_created_at;autoCreateTime" json:"event_feedback_created_at"`

	Event EventModel.EventModel `gorm:"foreignKey:EventFeedbackEventID;references:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"event,omitempty"`
	User  UserModel.UserModel   `gorm:"foreignKey:EventFeedbackUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"user,omitempty"`
}

func (EventFeedbackModel) TableName() string {
	return "event_feedbacks"
}

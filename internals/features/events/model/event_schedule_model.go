package model

import (
	"time"
)

// EventScheduleModel is a sub-session of an event (talk, set, slot).
// Owned by the event: deleting the event cascades here.
type EventScheduleModel struct {
	EventScheduleID      int64 `gorm:"column:event_schedule_id;primaryKey;autoIncrement" json:"event_schedule_id"`
	EventScheduleEventID int64 `gorm:"column:event_schedule_event_id;not null;index:idx_event_schedules_event" json:"event_schedule_event_id"`

	EventScheduleTitle       string  `gorm:"column:event_schedule_title;size:200;not null" json:"event_schedule_title"`
	EventScheduleDescription *string `gorm:"column:event_schedule_description;type:text" json:"event_schedule_description,omitempty"`

	EventScheduleStartTime time.Time `gorm:"column:event_schedule_start_time;not null" json:"event_schedule_start_time"`
	EventScheduleEndTime   time.Time `gorm:"column:event_schedule_end_time;not null;check:chk_event_schedules_time,event_schedule_end_time > event_schedule_start_time" json:"event_schedule_end_time"`

	EventScheduleSpeakerName *string `gorm:"column:event_schedule_speaker_name;size:100" json:"event_schedule_speaker_name,omitempty"`
	EventScheduleSpeakerBio  *string `gorm:"column:event_schedule_speaker_bio;type:text" json:"event_schedule_speaker_bio,omitempty"`

	EventScheduleCreatedAt time.Time `gorm:"column:event_schedule_created_at;autoCreateTime" json:"event_schedule_created_at"`

	Event EventModel `gorm:"foreignKey:EventScheduleEventID;references:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"event,omitempty"`
}

func (EventScheduleModel) TableName() string {
	return "event_schedules"
}

package model

import (
	"time"
)

// EventCategoryModel is a static lookup (e.g. "Concert").
type EventCategoryModel struct {
	EventCategoryID          int64     `gorm:"column:event_category_id;primaryKey;autoIncrement" json:"event_category_id"`
	EventCategoryName        string    `gorm:"column:event_category_name;size:100;not null;uniqueIndex:uq_event_categories_name" json:"event_category_name"`
	EventCategoryDescription *string   `gorm:"column:event_category_description;type:text" json:"event_category_description,omitempty"`
	EventCategoryCreatedAt   time.Time `gorm:"column:event_category_created_at;autoCreateTime" json:"event_category_created_at"`
}

func (EventCategoryModel) TableName() string {
	return "event_categories"
}

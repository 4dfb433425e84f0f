package models

import (
	"time"

	"gorm.io/gorm"
)

// Tag names are unique and case-sensitive. Tags are created lazily the first
// time a question references an unseen name and are never deleted.
type Tag struct {
	ID          uint           `json:"_id,string" gorm:"primarykey"`
	Name        string         `json:"name" gorm:"uniqueIndex;not null"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

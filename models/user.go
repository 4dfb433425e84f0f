package models

import (
	"time"

	"gorm.io/gorm"
)

// User is stored with a bcrypt password hash. The JSON form of the struct is
// the "safe" projection: the hash is never serialized.
type User struct {
	ID         uint           `json:"_id,string" gorm:"primarykey"`
	Username   string         `json:"username" gorm:"uniqueIndex;not null"`
	Password   string         `json:"-" gorm:"not null"`
	DateJoined time.Time      `json:"dateJoined"`
	CreatedAt  time.Time      `json:"-"`
	UpdatedAt  time.Time      `json:"-"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

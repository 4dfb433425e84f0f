package models

import (
	"time"

	"gorm.io/gorm"
)

// Answer is owned by exactly one question and never exists independently.
type Answer struct {
	ID          uint           `json:"_id,string" gorm:"primarykey"`
	QuestionID  uint           `json:"-" gorm:"not null;index"`
	Text        string         `json:"text" gorm:"type:text;not null"`
	AnsBy       string         `json:"ansBy" gorm:"not null"`
	AnsDateTime time.Time      `json:"ansDateTime"`
	Comments    []Comment      `json:"comments" gorm:"foreignKey:AnswerID"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (a *Answer) Project() {
	if a.Comments == nil {
		a.Comments = []Comment{}
	}
}

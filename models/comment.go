package models

import "time"

// Comment attaches to either a question or an answer; exactly one of the two
// foreign keys is set.
type Comment struct {
	ID              uint      `json:"_id,string" gorm:"primarykey"`
	QuestionID      *uint     `json:"-" gorm:"index"`
	AnswerID        *uint     `json:"-" gorm:"index"`
	Text            string    `json:"text" gorm:"type:text;not null"`
	CommentBy       string    `json:"commentBy" gorm:"not null"`
	CommentDateTime time.Time `json:"commentDateTime"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

package models

import "time"

type VoteType string

const (
	VoteUp   VoteType = "up"
	VoteDown VoteType = "down"
)

// QuestionVote holds at most one row per (question, user); the composite
// unique index makes it structurally impossible for a username to sit in
// both vote lists.
type QuestionVote struct {
	ID         uint      `json:"-" gorm:"primarykey"`
	QuestionID uint      `json:"-" gorm:"not null;uniqueIndex:idx_question_voter"`
	Username   string    `json:"-" gorm:"not null;uniqueIndex:idx_question_voter"`
	VoteType   VoteType  `json:"-" gorm:"not null"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// QuestionView records that a username has seen a question, at most once.
type QuestionView struct {
	ID         uint      `json:"-" gorm:"primarykey"`
	QuestionID uint      `json:"-" gorm:"not null;uniqueIndex:idx_question_viewer"`
	Username   string    `json:"-" gorm:"not null;uniqueIndex:idx_question_viewer"`
	CreatedAt  time.Time `json:"-"`
}

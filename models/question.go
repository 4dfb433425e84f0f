package models

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID          uint      `json:"_id,string" gorm:"primarykey"`
	Title       string    `json:"title" gorm:"not null"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	AskedBy     string    `json:"askedBy" gorm:"not null;index"`
	AskDateTime time.Time `json:"askDateTime"`
	Tags        []Tag     `json:"tags" gorm:"many2many:question_tags;"`
	Answers     []Answer  `json:"answers" gorm:"foreignKey:QuestionID"`
	Comments    []Comment `json:"comments" gorm:"foreignKey:QuestionID"`

	// Vote and view rows are the source of truth; the username lists below
	// are projections filled in by the repository after a load.
	VoteRecords []QuestionVote `json:"-" gorm:"foreignKey:QuestionID"`
	ViewRecords []QuestionView `json:"-" gorm:"foreignKey:QuestionID"`
	Views       []string       `json:"views" gorm:"-"`
	UpVotes     []string       `json:"upVotes" gorm:"-"`
	DownVotes   []string       `json:"downVotes" gorm:"-"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Project rebuilds the serialized username lists from the loaded vote and
// view rows and makes sure every list (and association slice) marshals as an
// array rather than null.
func (q *Question) Project() {
	q.Views = make([]string, 0, len(q.ViewRecords))
	for _, v := range q.ViewRecords {
		q.Views = append(q.Views, v.Username)
	}

	q.UpVotes = make([]string, 0)
	q.DownVotes = make([]string, 0)
	for _, v := range q.VoteRecords {
		switch v.VoteType {
		case VoteUp:
			q.UpVotes = append(q.UpVotes, v.Username)
		case VoteDown:
			q.DownVotes = append(q.DownVotes, v.Username)
		}
	}

	if q.Tags == nil {
		q.Tags = []Tag{}
	}
	if q.Answers == nil {
		q.Answers = []Answer{}
	}
	if q.Comments == nil {
		q.Comments = []Comment{}
	}
	for i := range q.Answers {
		q.Answers[i].Project()
	}
}

// HasTag reports whether the question carries a tag with the exact name.
func (q *Question) HasTag(name string) bool {
	for _, t := range q.Tags {
		if t.Name == name {
			return true
		}
	}
	return false
}

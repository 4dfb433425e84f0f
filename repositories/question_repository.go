package repositories

import (
	"querystack/models"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *models.Question) error
	GetByID(id uint) (*models.Question, error)
	GetAll() ([]models.Question, error)
	AddView(questionID uint, username string) error
	GetVote(questionID uint, username string) (*models.QuestionVote, error)
	CreateVote(vote *models.QuestionVote) error
	UpdateVote(vote *models.QuestionVote) error
	DeleteVote(vote *models.QuestionVote) error
	GetVoteLists(questionID uint) (upVotes, downVotes []string, err error)
	CreateComment(comment *models.Comment) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) withRelations() *gorm.DB {
	return r.db.
		Preload("Tags").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.ans_date_time ASC")
		}).
		Preload("Answers.Comments").
		Preload("Comments").
		Preload("VoteRecords").
		Preload("ViewRecords")
}

func (r *questionRepository) Create(question *models.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	if err := r.withRelations().First(&question, id).Error; err != nil {
		return nil, err
	}
	question.Project()
	return &question, nil
}

func (r *questionRepository) GetAll() ([]models.Question, error) {
	var questions []models.Question
	if err := r.withRelations().Order("ask_date_time DESC").Find(&questions).Error; err != nil {
		return nil, err
	}
	for i := range questions {
		questions[i].Project()
	}
	return questions, nil
}

// AddView is idempotent: the unique (question_id, username) index backs the
// FirstOrCreate.
func (r *questionRepository) AddView(questionID uint, username string) error {
	view := models.QuestionView{QuestionID: questionID, Username: username}
	return r.db.
		Where(models.QuestionView{QuestionID: questionID, Username: username}).
		FirstOrCreate(&view).Error
}

func (r *questionRepository) GetVote(questionID uint, username string) (*models.QuestionVote, error) {
	var vote models.QuestionVote
	err := r.db.
		Where("question_id = ? AND username = ?", questionID, username).
		First(&vote).Error
	return &vote, err
}

func (r *questionRepository) CreateVote(vote *models.QuestionVote) error {
	return r.db.Create(vote).Error
}

func (r *questionRepository) UpdateVote(vote *models.QuestionVote) error {
	return r.db.Save(vote).Error
}

func (r *questionRepository) DeleteVote(vote *models.QuestionVote) error {
	return r.db.Delete(vote).Error
}

func (r *questionRepository) GetVoteLists(questionID uint) ([]string, []string, error) {
	var votes []models.QuestionVote
	err := r.db.
		Where("question_id = ?", questionID).
		Order("created_at asc").
		Find(&votes).Error
	if err != nil {
		return nil, nil, err
	}

	upVotes := make([]string, 0)
	downVotes := make([]string, 0)
	for _, v := range votes {
		if v.VoteType == models.VoteUp {
			upVotes = append(upVotes, v.Username)
		} else {
			downVotes = append(downVotes, v.Username)
		}
	}
	return upVotes, downVotes, nil
}

func (r *questionRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

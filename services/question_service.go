package services

import (
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"

	"querystack/models"
	"querystack/repositories"

	"gorm.io/gorm"
)

// Order tokens recognized by GetQuestionsByOrder. Anything else falls back
// to newest-first.
const (
	OrderNewest     = "newest"
	OrderActive     = "active"
	OrderUnanswered = "unanswered"
	OrderMostViewed = "mostViewed"
)

var tagFilterPattern = regexp.MustCompile(`\[([^\]]+)\]`)

type QuestionService interface {
	SaveQuestion(question *models.Question) (*models.Question, error)
	FetchAndIncrementQuestionViewsById(qid uint, username string) (*models.Question, error)
	GetQuestionsByOrder(order string) ([]models.Question, error)
	FilterQuestionsBySearch(questions []models.Question, search string) []models.Question
	AddVoteToQuestion(qid uint, username string, voteType models.VoteType) (*models.VoteResponse, error)
	SaveAnswer(qid uint, answer *models.Answer) (*models.Answer, error)
	SaveComment(parentType string, parentID uint, comment *models.Comment) (*models.Comment, error)
}

type questionService struct {
	questionRepo repositories.QuestionRepository
	answerRepo   repositories.AnswerRepository
}

func NewQuestionService(questionRepo repositories.QuestionRepository, answerRepo repositories.AnswerRepository) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
	}
}

// SaveQuestion persists a new question with a server-assigned ask time. The
// tag set must already be resolved and deduplicated.
func (s *questionService) SaveQuestion(question *models.Question) (*models.Question, error) {
	question.AskDateTime = time.Now().UTC()

	if err := s.questionRepo.Create(question); err != nil {
		return nil, err
	}

	return s.questionRepo.GetByID(question.ID)
}

// FetchAndIncrementQuestionViewsById loads a question and records the view.
// Viewing again with the same username leaves the views list unchanged.
func (s *questionService) FetchAndIncrementQuestionViewsById(qid uint, username string) (*models.Question, error) {
	if _, err := s.questionRepo.GetByID(qid); err != nil {
		return nil, err
	}

	if err := s.questionRepo.AddView(qid, username); err != nil {
		return nil, err
	}

	return s.questionRepo.GetByID(qid)
}

func (s *questionService) GetQuestionsByOrder(order string) ([]models.Question, error) {
	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, err
	}

	switch order {
	case OrderActive:
		sortByActivity(questions)
	case OrderUnanswered:
		questions = filterUnanswered(questions)
	case OrderMostViewed:
		sortByViews(questions)
	default:
		// repository already returns newest-first
	}

	return questions, nil
}

func filterUnanswered(questions []models.Question) []models.Question {
	unanswered := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if len(q.Answers) == 0 {
			unanswered = append(unanswered, q)
		}
	}
	return unanswered
}

// sortByActivity puts questions with the most recent answers first;
// questions without answers follow, newest-first within both groups.
func sortByActivity(questions []models.Question) {
	latestAnswer := func(q models.Question) (time.Time, bool) {
		var latest time.Time
		for _, a := range q.Answers {
			if a.AnsDateTime.After(latest) {
				latest = a.AnsDateTime
			}
		}
		return latest, len(q.Answers) > 0
	}

	sort.SliceStable(questions, func(i, j int) bool {
		iLatest, iAnswered := latestAnswer(questions[i])
		jLatest, jAnswered := latestAnswer(questions[j])

		if iAnswered != jAnswered {
			return iAnswered
		}
		if !iLatest.Equal(jLatest) {
			return iLatest.After(jLatest)
		}
		return questions[i].AskDateTime.After(questions[j].AskDateTime)
	})
}

func sortByViews(questions []models.Question) {
	sort.SliceStable(questions, func(i, j int) bool {
		if len(questions[i].Views) != len(questions[j].Views) {
			return len(questions[i].Views) > len(questions[j].Views)
		}
		return questions[i].AskDateTime.After(questions[j].AskDateTime)
	})
}

// FilterQuestionsBySearch keeps questions whose title or text contains any
// free-text term (case-insensitive) or whose tag set contains any
// [bracketed] tag name (exact match). An empty search returns the input
// unchanged.
func (s *questionService) FilterQuestionsBySearch(questions []models.Question, search string) []models.Question {
	search = strings.TrimSpace(search)
	if search == "" {
		return questions
	}

	tagNames := make([]string, 0)
	for _, match := range tagFilterPattern.FindAllStringSubmatch(search, -1) {
		tagNames = append(tagNames, match[1])
	}
	keywords := strings.Fields(tagFilterPattern.ReplaceAllString(search, " "))

	matches := func(q models.Question) bool {
		title := strings.ToLower(q.Title)
		text := strings.ToLower(q.Text)
		for _, kw := range keywords {
			kw = strings.ToLower(kw)
			if strings.Contains(title, kw) || strings.Contains(text, kw) {
				return true
			}
		}
		for _, name := range tagNames {
			if q.HasTag(name) {
				return true
			}
		}
		return false
	}

	filtered := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if matches(q) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// AddVoteToQuestion applies toggle semantics: the same vote type again
// cancels the vote, the opposite type moves the user between lists.
func (s *questionService) AddVoteToQuestion(qid uint, username string, voteType models.VoteType) (*models.VoteResponse, error) {
	if _, err := s.questionRepo.GetByID(qid); err != nil {
		return nil, err
	}

	existing, err := s.questionRepo.GetVote(qid, username)
	var msg string
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		vote := &models.QuestionVote{
			QuestionID: qid,
			Username:   username,
			VoteType:   voteType,
		}
		if err := s.questionRepo.CreateVote(vote); err != nil {
			return nil, err
		}
		msg = votedMessage(voteType)

	case err != nil:
		return nil, err

	case existing.VoteType == voteType:
		if err := s.questionRepo.DeleteVote(existing); err != nil {
			return nil, err
		}
		msg = cancelledMessage(voteType)

	default:
		existing.VoteType = voteType
		if err := s.questionRepo.UpdateVote(existing); err != nil {
			return nil, err
		}
		msg = votedMessage(voteType)
	}

	upVotes, downVotes, err := s.questionRepo.GetVoteLists(qid)
	if err != nil {
		return nil, err
	}

	return &models.VoteResponse{
		Msg:       msg,
		UpVotes:   upVotes,
		DownVotes: downVotes,
	}, nil
}

func votedMessage(voteType models.VoteType) string {
	if voteType == models.VoteUp {
		return "Question upvoted successfully"
	}
	return "Question downvoted successfully"
}

func cancelledMessage(voteType models.VoteType) string {
	if voteType == models.VoteUp {
		return "Upvote cancelled successfully"
	}
	return "Downvote cancelled successfully"
}

// SaveAnswer appends an answer to an existing question with a
// server-assigned answer time.
func (s *questionService) SaveAnswer(qid uint, answer *models.Answer) (*models.Answer, error) {
	if _, err := s.questionRepo.GetByID(qid); err != nil {
		return nil, err
	}

	answer.QuestionID = qid
	answer.AnsDateTime = time.Now().UTC()
	if err := s.answerRepo.Create(answer); err != nil {
		return nil, err
	}

	return s.answerRepo.GetByID(answer.ID)
}

// SaveComment attaches a comment to a question or an answer with a
// server-assigned comment time.
func (s *questionService) SaveComment(parentType string, parentID uint, comment *models.Comment) (*models.Comment, error) {
	comment.CommentDateTime = time.Now().UTC()

	switch parentType {
	case "question":
		if _, err := s.questionRepo.GetByID(parentID); err != nil {
			return nil, err
		}
		comment.QuestionID = &parentID
	case "answer":
		if _, err := s.answerRepo.GetByID(parentID); err != nil {
			return nil, err
		}
		comment.AnswerID = &parentID
	default:
		return nil, errors.New("invalid comment parent type")
	}

	if err := s.questionRepo.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

package handlers

import (
	"net/http"

	"querystack/config"
	"querystack/helper"
	"querystack/models"
	"querystack/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService services.QuestionService
	tagService      services.TagService
	Helper          *helper.HTTPHelper
}

func NewQuestionHandler(questionService services.QuestionService, tagService services.TagService, h *helper.HTTPHelper) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		tagService:      tagService,
		Helper:          h,
	}
}

// AddQuestion validates the body, resolves the tag set, and persists the
// question. An empty ProcessTags result means tag resolution failed and the
// whole operation is rejected.
func (h *QuestionHandler) AddQuestion(c *gin.Context) {
	var req models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid question body")
		return
	}
	if err := h.Helper.ValidateStruct(req); err != nil {
		config.Logger.WithField("fields", h.Helper.ValidationMessages(err)).Info("Invalid question body")
		c.String(http.StatusBadRequest, "Invalid question body")
		return
	}

	tags := h.tagService.ProcessTags(req.Tags)
	if len(tags) == 0 {
		c.String(http.StatusInternalServerError, "Error when saving question: could not resolve tags")
		return
	}

	question := &models.Question{
		Title:   req.Title,
		Text:    req.Text,
		AskedBy: req.AskedBy,
		Tags:    tags,
	}

	saved, err := h.questionService.SaveQuestion(question)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error when saving question: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, saved)
}

func (h *QuestionHandler) UpvoteQuestion(c *gin.Context) {
	h.voteQuestion(c, models.VoteUp)
}

func (h *QuestionHandler) DownvoteQuestion(c *gin.Context) {
	h.voteQuestion(c, models.VoteDown)
}

func (h *QuestionHandler) voteQuestion(c *gin.Context, voteType models.VoteType) {
	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request")
		return
	}
	if err := h.Helper.ValidateStruct(req); err != nil {
		config.Logger.WithField("fields", h.Helper.ValidationMessages(err)).Info("Invalid vote body")
		c.String(http.StatusBadRequest, "Invalid request")
		return
	}

	qid, err := h.Helper.ParseID(req.Qid)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid request")
		return
	}

	result, err := h.questionService.AddVoteToQuestion(qid, req.Username, voteType)
	if err != nil {
		if voteType == models.VoteUp {
			c.String(http.StatusInternalServerError, "Error when upvoting question: "+err.Error())
		} else {
			c.String(http.StatusInternalServerError, "Error when downvoting question: "+err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetQuestionById returns the question and records the requesting username
// in its views, at most once.
func (h *QuestionHandler) GetQuestionById(c *gin.Context) {
	qid, err := h.Helper.ParseID(c.Param("qid"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid ID format")
		return
	}

	username := c.Query("username")
	if username == "" {
		c.String(http.StatusBadRequest, "Invalid username requesting question.")
		return
	}

	question, err := h.questionService.FetchAndIncrementQuestionViewsById(qid, username)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error when fetching question by id: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, question)
}

// GetQuestion lists questions in the requested order, narrowed by the
// search expression.
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	order := c.Query("order")
	search := c.Query("search")

	questions, err := h.questionService.GetQuestionsByOrder(order)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error when fetching questions by filter: "+err.Error())
		return
	}

	questions = h.questionService.FilterQuestionsBySearch(questions, search)

	c.JSON(http.StatusOK, questions)
}

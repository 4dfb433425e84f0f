package handlers

import (
	"net/http"

	"querystack/config"
	"querystack/helper"
	"querystack/models"
	"querystack/services"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	questionService services.QuestionService
	Helper          *helper.HTTPHelper
}

func NewAnswerHandler(questionService services.QuestionService, h *helper.HTTPHelper) *AnswerHandler {
	return &AnswerHandler{
		questionService: questionService,
		Helper:          h,
	}
}

// AddAnswer appends an answer to the referenced question.
func (h *AnswerHandler) AddAnswer(c *gin.Context) {
	var req models.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid answer")
		return
	}
	if err := h.Helper.ValidateStruct(req); err != nil {
		config.Logger.WithField("fields", h.Helper.ValidationMessages(err)).Info("Invalid answer body")
		c.String(http.StatusBadRequest, "Invalid answer")
		return
	}

	qid, err := h.Helper.ParseID(req.Qid)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid answer")
		return
	}

	answer := &models.Answer{
		Text:  req.Text,
		AnsBy: req.AnsBy,
	}

	saved, err := h.questionService.SaveAnswer(qid, answer)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error when adding answer: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, saved)
}

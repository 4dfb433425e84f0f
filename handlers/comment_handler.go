package handlers

import (
	"net/http"

	"querystack/config"
	"querystack/helper"
	"querystack/models"
	"querystack/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	questionService services.QuestionService
	Helper          *helper.HTTPHelper
}

func NewCommentHandler(questionService services.QuestionService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{
		questionService: questionService,
		Helper:          h,
	}
}

// AddComment attaches a comment to a question or an answer. A malformed
// parent id is a validation failure, same as a missing field.
func (h *CommentHandler) AddComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid comment")
		return
	}
	if err := h.Helper.ValidateStruct(req); err != nil {
		config.Logger.WithField("fields", h.Helper.ValidationMessages(err)).Info("Invalid comment body")
		c.String(http.StatusBadRequest, "Invalid comment")
		return
	}

	parentID, err := h.Helper.ParseID(req.ID)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid comment")
		return
	}

	comment := &models.Comment{
		Text:      req.Text,
		CommentBy: req.CommentBy,
	}

	saved, err := h.questionService.SaveComment(req.Type, parentID, comment)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error when adding comment: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, saved)
}

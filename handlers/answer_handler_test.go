package handlers

import (
	"errors"
	"net/http"
	"testing"

	"querystack/helper"
	"querystack/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAnswerRouter(questionSvc *mockQuestionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := helper.NewHTTPHelper()

	router := gin.New()
	router.POST("/answer/addAnswer", NewAnswerHandler(questionSvc, h).AddAnswer)
	router.POST("/comment/addComment", NewCommentHandler(questionSvc, h).AddComment)
	return router
}

func TestAddAnswerSuccess(t *testing.T) {
	questionSvc := new(mockQuestionService)
	router := newAnswerRouter(questionSvc)

	questionSvc.On("SaveAnswer", uint(12), mock.MatchedBy(func(a *models.Answer) bool {
		return a.Text == "Answer 1 Text" && a.AnsBy == "answer1_user"
	})).Return(&models.Answer{ID: 4, Text: "Answer 1 Text", AnsBy: "answer1_user"}, nil)

	w := doJSON(t, router, http.MethodPost, "/answer/addAnswer", map[string]string{
		"qid":   "12",
		"text":  "Answer 1 Text",
		"ansBy": "answer1_user",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"_id":"4"`)
}

func TestAddAnswerInvalidBody(t *testing.T) {
	questionSvc := new(mockQuestionService)
	router := newAnswerRouter(questionSvc)

	for name, body := range map[string]map[string]string{
		"missing text":  {"qid": "12", "ansBy": "answer1_user"},
		"missing ansBy": {"qid": "12", "text": "Answer 1 Text"},
		"malformed qid": {"qid": "abc", "text": "Answer 1 Text", "ansBy": "answer1_user"},
	} {
		t.Run(name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/answer/addAnswer", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Invalid answer", w.Body.String())
		})
	}

	questionSvc.AssertNotCalled(t, "SaveAnswer", mock.Anything, mock.Anything)
}

func TestAddAnswerStoreError(t *testing.T) {
	questionSvc := new(mockQuestionService)
	router := newAnswerRouter(questionSvc)

	questionSvc.On("SaveAnswer", uint(12), mock.Anything).Return(nil, errors.New("record not found"))

	w := doJSON(t, router, http.MethodPost, "/answer/addAnswer", map[string]string{
		"qid":   "12",
		"text":  "Answer 1 Text",
		"ansBy": "answer1_user",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAddCommentSuccess(t *testing.T) {
	questionSvc := new(mockQuestionService)
	router := newAnswerRouter(questionSvc)

	questionSvc.On("SaveComment", "question", uint(12), mock.MatchedBy(func(c *models.Comment) bool {
		return c.Text == "a comment" && c.CommentBy == "commenter"
	})).Return(&models.Comment{ID: 9, Text: "a comment", CommentBy: "commenter"}, nil)

	w := doJSON(t, router, http.MethodPost, "/comment/addComment", map[string]string{
		"id":        "12",
		"type":      "question",
		"text":      "a comment",
		"commentBy": "commenter",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"_id":"9"`)
}

func TestAddCommentInvalidParentType(t *testing.T) {
	questionSvc := new(mockQuestionService)
	router := newAnswerRouter(questionSvc)

	w := doJSON(t, router, http.MethodPost, "/comment/addComment", map[string]string{
		"id":        "12",
		"type":      "tag",
		"text":      "a comment",
		"commentBy": "commenter",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid comment", w.Body.String())
	questionSvc.AssertNotCalled(t, "SaveComment", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddCommentMalformedParentID(t *testing.T) {
	questionSvc := new(mockQuestionService)
	router := newAnswerRouter(questionSvc)

	w := doJSON(t, router, http.MethodPost, "/comment/addComment", map[string]string{
		"id":        "abc",
		"type":      "question",
		"text":      "a comment",
		"commentBy": "commenter",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid comment", w.Body.String())
	questionSvc.AssertNotCalled(t, "SaveComment", mock.Anything, mock.Anything, mock.Anything)
}

package handlers

import (
	"net/http"
	"sort"

	"querystack/models"
	"querystack/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
}

func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// GetTagsWithQuestionNumber lists every tag with the number of questions
// referencing it, zero included.
func (h *TagHandler) GetTagsWithQuestionNumber(c *gin.Context) {
	countMap, err := h.tagService.GetTagCountMap()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error when fetching tag counts: "+err.Error())
		return
	}
	if countMap == nil {
		c.String(http.StatusInternalServerError, "Error when fetching tag counts: no tags found")
		return
	}

	counts := make([]models.TagCount, 0, len(countMap))
	for name, qcnt := range countMap {
		counts = append(counts, models.TagCount{Name: name, Qcnt: qcnt})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Name < counts[j].Name })

	c.JSON(http.StatusOK, counts)
}

func (h *TagHandler) GetTagByName(c *gin.Context) {
	name := c.Param("name")

	tag, err := h.tagService.GetTagByName(name)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error when fetching tag: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, tag)
}

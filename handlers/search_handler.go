package handlers

import (
	"errors"

	"techforum/helper"
	"techforum/models"
	"techforum/services"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	questionService services.QuestionService
	Helper          *helper.HTTPHelper
}

func NewSearchHandler(questionService services.QuestionService, h *helper.HTTPHelper) *SearchHandler {
	return &SearchHandler{questionService: questionService, Helper: h}
}

// Search matches the query against question text. An empty result set is
// reported as not found, matching the behavior callers already depend on.
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("tags")
	if query == "" {
		h.Helper.SendBadRequest(c, "Enter a tag")
		return
	}

	questions, err := h.questionService.Search(query)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "Data Not Found")
			return
		}
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Question searched Successfully!!", questions)
}

package handlers

import (
	"errors"

	"techforum/helper"
	"techforum/middleware"
	"techforum/models"
	"techforum/services"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	answerService services.AnswerService
	Helper        *helper.HTTPHelper
}

func NewAnswerHandler(answerService services.AnswerService, h *helper.HTTPHelper) *AnswerHandler {
	return &AnswerHandler{answerService: answerService, Helper: h}
}

func (h *AnswerHandler) Create(c *gin.Context) {
	var req models.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	answer, err := h.answerService.Create(req, middleware.CurrentUserID(c))
	if err != nil {
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendCreated(c, "Answer posted successfully", answer)
}

func (h *AnswerHandler) GetByQuestion(c *gin.Context) {
	questionID, ok := helper.ParseID(c.Param("questionId"))
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid question id")
		return
	}

	answers, err := h.answerService.GetByQuestion(questionID)
	if err != nil {
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Answers got successfully", answers)
}

func (h *AnswerHandler) Update(c *gin.Context) {
	id, ok := helper.ParseID(c.Param("id"))
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid answer id")
		return
	}

	var req models.UpdateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if err := h.answerService.Update(id, req); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "Answer not found")
			return
		}
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Answer updated successfully", nil)
}

func (h *AnswerHandler) Delete(c *gin.Context) {
	id, ok := helper.ParseID(c.Param("id"))
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid answer id")
		return
	}

	if err := h.answerService.Delete(id); err != nil {
		if errors.Is(err, models.ErrAlreadyDeleted) {
			h.Helper.SendNotFoundError(c, "Answer already deleted!")
			return
		}
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Answer deleted successfully", nil)
}

// Upvote toggles the caller in the answer's upvoter set; a second identical
// request undoes the first.
func (h *AnswerHandler) Upvote(c *gin.Context) {
	h.vote(c, true)
}

func (h *AnswerHandler) Downvote(c *gin.Context) {
	h.vote(c, false)
}

func (h *AnswerHandler) vote(c *gin.Context, up bool) {
	id, ok := helper.ParseID(c.Param("id"))
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid answer id")
		return
	}

	userID := middleware.CurrentUserID(c)

	var removed bool
	var err error
	if up {
		removed, err = h.answerService.Upvote(id, userID)
	} else {
		removed, err = h.answerService.Downvote(id, userID)
	}
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "Answer not found")
			return
		}
		h.Helper.SendServerError(c)
		return
	}

	switch {
	case removed && up:
		h.Helper.SendCreated(c, "Upvote removed", nil)
	case removed:
		h.Helper.SendCreated(c, "Downvote removed", nil)
	case up:
		h.Helper.SendCreated(c, "Upvoted Successfully", nil)
	default:
		h.Helper.SendCreated(c, "Downvoted Successfully", nil)
	}
}

// CheckUpvote reports whether the caller currently upvotes the answer.
func (h *AnswerHandler) CheckUpvote(c *gin.Context) {
	h.check(c, true)
}

func (h *AnswerHandler) CheckDownvote(c *gin.Context) {
	h.check(c, false)
}

func (h *AnswerHandler) check(c *gin.Context, up bool) {
	id, ok := helper.ParseID(c.Param("id"))
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid answer id")
		return
	}

	userID := middleware.CurrentUserID(c)

	var voted bool
	var err error
	if up {
		voted, err = h.answerService.HasUpvoted(id, userID)
	} else {
		voted, err = h.answerService.HasDownvoted(id, userID)
	}
	if err != nil {
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Vote state", gin.H{"voted": voted})
}

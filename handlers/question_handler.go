package handlers

import (
	"errors"

	"techforum/helper"
	"techforum/middleware"
	"techforum/models"
	"techforum/services"

	"github.com/gin-gonic/gin"
)

const defaultQuestionPageSize = 8

type QuestionHandler struct {
	questionService services.QuestionService
	Helper          *helper.HTTPHelper
}

func NewQuestionHandler(questionService services.QuestionService, h *helper.HTTPHelper) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, Helper: h}
}

func (h *QuestionHandler) Create(c *gin.Context) {
	var req models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	question, err := h.questionService.Create(req, middleware.CurrentUserID(c))
	if err != nil {
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendCreated(c, "Question created successfully", question)
}

func (h *QuestionHandler) GetAll(c *gin.Context) {
	questions, err := h.questionService.GetAll()
	if err != nil {
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Questions read successfully", questions)
}

func (h *QuestionHandler) GetPage(c *gin.Context) {
	page := models.Page{
		Number: helper.StringToInt(c.Query("page"), 1),
		Size:   helper.StringToInt(c.Query("limit"), defaultQuestionPageSize),
	}

	questions, total, err := h.questionService.GetPage(page)
	if err != nil {
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendPage(c, "Questions read successfully", questions, len(questions), page.Number, page.Size, total)
}

func (h *QuestionHandler) GetByID(c *gin.Context) {
	id, ok := helper.ParseID(c.Param("id"))
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid question id")
		return
	}

	question, err := h.questionService.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "Data Not Found")
			return
		}
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Question read successfully", question)
}

func (h *QuestionHandler) GetByUser(c *gin.Context) {
	userID, ok := helper.ParseID(c.Param("userId"))
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid user id")
		return
	}

	questions, err := h.questionService.GetByUser(userID)
	if err != nil {
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Questions read successfully", questions)
}

func (h *QuestionHandler) Update(c *gin.Context) {
	id, ok := helper.ParseID(c.Param("id"))
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid question id")
		return
	}

	var req models.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	question, err := h.questionService.Update(id, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "Data Not Found")
			return
		}
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Question updated successfully", question)
}

// Delete also removes the question's answers, their votes, and any
// bookmarks pointing at it.
func (h *QuestionHandler) Delete(c *gin.Context) {
	id, ok := helper.ParseID(c.Param("id"))
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid question id")
		return
	}

	if err := h.questionService.Delete(id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "Data Not Found")
			return
		}
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Question deleted successfully", nil)
}

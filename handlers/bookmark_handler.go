package handlers

import (
	"errors"

	"techforum/helper"
	"techforum/middleware"
	"techforum/models"
	"techforum/services"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	bookmarkService services.BookmarkService
	Helper          *helper.HTTPHelper
}

func NewBookmarkHandler(bookmarkService services.BookmarkService, h *helper.HTTPHelper) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService, Helper: h}
}

// Toggle bookmarks the question for the caller, or removes the existing
// bookmark when there already is one.
func (h *BookmarkHandler) Toggle(c *gin.Context) {
	var req models.BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	added, err := h.bookmarkService.Toggle(middleware.CurrentUserID(c), req.QuestionID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "Question not found")
			return
		}
		h.Helper.SendServerError(c)
		return
	}

	if added {
		h.Helper.SendCreated(c, "Added bookmark", nil)
		return
	}
	h.Helper.SendSuccess(c, "Bookmark removed", nil)
}

func (h *BookmarkHandler) GetByUser(c *gin.Context) {
	userID, ok := helper.ParseID(c.Param("userId"))
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid user id")
		return
	}

	bookmarks, err := h.bookmarkService.GetByUser(userID)
	if err != nil {
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Bookmarks", bookmarks)
}

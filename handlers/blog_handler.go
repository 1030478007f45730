package handlers

import (
	"errors"

	"techforum/helper"
	"techforum/middleware"
	"techforum/models"
	"techforum/services"

	"github.com/gin-gonic/gin"
)

const defaultBlogPageSize = 8

type BlogHandler struct {
	blogService services.BlogService
	Helper      *helper.HTTPHelper
}

func NewBlogHandler(blogService services.BlogService, h *helper.HTTPHelper) *BlogHandler {
	return &BlogHandler{blogService: blogService, Helper: h}
}

// GetPage lists approved blogs only, newest first.
func (h *BlogHandler) GetPage(c *gin.Context) {
	page := models.Page{
		Number: helper.StringToInt(c.Query("pageNumber"), 1),
		Size:   helper.StringToInt(c.Query("pageSize"), defaultBlogPageSize),
	}

	blogs, total, err := h.blogService.GetApprovedPage(page)
	if err != nil {
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendPage(c, "Blogs read successfully", blogs, len(blogs), page.Number, page.Size, total)
}

func (h *BlogHandler) GetByID(c *gin.Context) {
	id, ok := helper.ParseID(c.Param("id"))
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid blog id")
		return
	}

	blog, err := h.blogService.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "Blog not found!")
			return
		}
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Successfully got the Blog", blog)
}

func (h *BlogHandler) GetByUser(c *gin.Context) {
	userID, ok := helper.ParseID(c.Param("userId"))
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid userId")
		return
	}

	blogs, err := h.blogService.GetByUser(userID)
	if err != nil {
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Blog get successfully", blogs)
}

func (h *BlogHandler) GetTitles(c *gin.Context) {
	titles, err := h.blogService.GetApprovedTitles()
	if err != nil {
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Blog titles", titles)
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req models.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	blog, err := h.blogService.Create(req, middleware.CurrentUserID(c))
	if err != nil {
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendCreated(c, "Blog posted successfully", blog)
}

func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := helper.ParseID(c.Param("id"))
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid blog id")
		return
	}

	var req models.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	blog, err := h.blogService.Update(id, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "Blog not found!")
			return
		}
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Successfully updated a blog", blog)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := helper.ParseID(c.Param("id"))
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid blog id")
		return
	}

	if err := h.blogService.Delete(id); err != nil {
		if errors.Is(err, models.ErrAlreadyDeleted) {
			h.Helper.SendNotFoundError(c, "Already deleted!")
			return
		}
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Successfully deleted a blog", nil)
}

package handlers

import (
	"errors"

	"techforum/helper"
	"techforum/middleware"
	"techforum/models"
	"techforum/services"

	"github.com/gin-gonic/gin"
)

const defaultDocumentPageSize = 5

type DocumentHandler struct {
	documentService services.DocumentService
	Helper          *helper.HTTPHelper
}

func NewDocumentHandler(documentService services.DocumentService, h *helper.HTTPHelper) *DocumentHandler {
	return &DocumentHandler{documentService: documentService, Helper: h}
}

func (h *DocumentHandler) Create(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.Helper.SendBadRequest(c, "No file uploaded")
		return
	}

	doc, err := h.documentService.Create(file, middleware.CurrentUserID(c))
	if err != nil {
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendCreated(c, "Successfully posted a Document", doc)
}

func (h *DocumentHandler) GetPage(c *gin.Context) {
	page := models.Page{
		Number: helper.StringToInt(c.Query("pageNumber"), 1),
		Size:   helper.StringToInt(c.Query("pageSize"), defaultDocumentPageSize),
	}

	docs, total, err := h.documentService.GetApprovedPage(page)
	if err != nil {
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendPage(c, "Documents read successfully", docs, len(docs), page.Number, page.Size, total)
}

func (h *DocumentHandler) GetByID(c *gin.Context) {
	id, ok := helper.ParseID(c.Param("id"))
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid document id")
		return
	}

	doc, err := h.documentService.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "Document not found!")
			return
		}
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Successfully got the Document", doc)
}

func (h *DocumentHandler) GetByUser(c *gin.Context) {
	userID, ok := helper.ParseID(c.Param("userId"))
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid user id")
		return
	}

	docs, err := h.documentService.GetByUser(userID)
	if err != nil {
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Document get successfully", docs)
}

func (h *DocumentHandler) Update(c *gin.Context) {
	id, ok := helper.ParseID(c.Param("id"))
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid document id")
		return
	}

	var req models.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	doc, err := h.documentService.Update(id, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "Document not found!")
			return
		}
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Successfully updated Document", doc)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := helper.ParseID(c.Param("id"))
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid document id")
		return
	}

	if err := h.documentService.Delete(id); err != nil {
		if errors.Is(err, models.ErrAlreadyDeleted) {
			h.Helper.SendNotFoundError(c, "Already deleted!")
			return
		}
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Successfully deleted Document", nil)
}

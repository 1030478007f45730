package services

import (
	"errors"
	"io"
	"mime/multipart"

	"techforum/models"
	"techforum/repositories"

	"gorm.io/gorm"
)

type DocumentService interface {
	Create(file *multipart.FileHeader, userID uint) (*models.Document, error)
	GetApprovedPage(page models.Page) ([]models.Document, int64, error)
	GetByID(id uint) (*models.Document, error)
	GetByUser(userID uint) ([]models.Document, error)
	Update(id uint, req models.UpdateDocumentRequest) (*models.Document, error)
	Delete(id uint) error
}

type documentService struct {
	documentRepo repositories.DocumentRepository
}

func NewDocumentService(documentRepo repositories.DocumentRepository) DocumentService {
	return &documentService{documentRepo: documentRepo}
}

func (s *documentService) Create(file *multipart.FileHeader, userID uint) (*models.Document, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		UserID:   userID,
		FileName: file.Filename,
		FileType: file.Header.Get("Content-Type"),
		DocData:  data,
	}
	if err := s.documentRepo.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *documentService) GetApprovedPage(page models.Page) ([]models.Document, int64, error) {
	return s.documentRepo.GetApprovedPage(page)
}

func (s *documentService) GetByID(id uint) (*models.Document, error) {
	doc, err := s.documentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) GetByUser(userID uint) ([]models.Document, error) {
	return s.documentRepo.GetByUser(userID)
}

func (s *documentService) Update(id uint, req models.UpdateDocumentRequest) (*models.Document, error) {
	doc, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.FileName != nil {
		doc.FileName = *req.FileName
	}
	if req.IsApproved != nil {
		doc.IsApproved = *req.IsApproved
	}

	if err := s.documentRepo.Update(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Delete(id uint) error {
	affected, err := s.documentRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrAlreadyDeleted
	}
	return nil
}

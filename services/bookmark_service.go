package services

import (
	"errors"

	"techforum/models"
	"techforum/repositories"

	"gorm.io/gorm"
)

type BookmarkService interface {
	Toggle(userID, questionID uint) (added bool, err error)
	GetByUser(userID uint) ([]models.Bookmark, error)
}

type bookmarkService struct {
	bookmarkRepo repositories.BookmarkRepository
}

func NewBookmarkService(bookmarkRepo repositories.BookmarkRepository) BookmarkService {
	return &bookmarkService{bookmarkRepo: bookmarkRepo}
}

func (s *bookmarkService) Toggle(userID, questionID uint) (bool, error) {
	added, err := s.bookmarkRepo.Toggle(userID, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, models.ErrNotFound
		}
		return false, err
	}
	return added, nil
}

func (s *bookmarkService) GetByUser(userID uint) ([]models.Bookmark, error) {
	return s.bookmarkRepo.GetByUser(userID)
}

package repositories

import (
	"errors"

	"techforum/models"

	"gorm.io/gorm"
)

type BookmarkRepository interface {
	Toggle(userID, questionID uint) (added bool, err error)
	GetByUser(userID uint) ([]models.Bookmark, error)
}

type bookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

// Toggle adds the bookmark if the (user, question) pair has none, removes it
// otherwise. The unique index on the pair means a concurrent duplicate
// insert fails instead of creating a second row.
func (r *bookmarkRepository) Toggle(userID, questionID uint) (bool, error) {
	var added bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var question models.Question
		if err := tx.Select("id").First(&question, questionID).Error; err != nil {
			return err
		}

		var existing models.Bookmark
		err := tx.Where("user_id = ? AND question_id = ?", userID, questionID).First(&existing).Error
		switch {
		case err == nil:
			return tx.Delete(&existing).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			added = true
			return tx.Create(&models.Bookmark{UserID: userID, QuestionID: questionID}).Error
		default:
			return err
		}
	})
	return added, err
}

func (r *bookmarkRepository) GetByUser(userID uint) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := r.db.Preload("Question").Preload("Question.User").
		Where("user_id = ?", userID).
		Find(&bookmarks).Error
	return bookmarks, err
}

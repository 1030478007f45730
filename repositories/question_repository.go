package repositories

import (
	"strings"

	"techforum/models"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *models.Question) error
	GetAll() ([]models.Question, error)
	GetPage(page models.Page) ([]models.Question, int64, error)
	GetByID(id uint) (*models.Question, error)
	GetByUser(userID uint) ([]models.Question, error)
	Update(question *models.Question) error
	Delete(id uint) error
	Search(query string) ([]models.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *models.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) GetAll() ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Preload("User").Find(&questions).Error
	return questions, err
}

func (r *questionRepository) GetPage(page models.Page) ([]models.Question, int64, error) {
	var questions []models.Question
	var total int64

	if err := r.db.Model(&models.Question{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("User").
		Order("created_at desc").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&questions).Error
	return questions, total, err
}

func (r *questionRepository) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	err := r.db.Preload("User").First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) GetByUser(userID uint) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Preload("User").Where("user_id = ?", userID).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) Update(question *models.Question) error {
	return r.db.Save(question).Error
}

// Delete removes the question and everything hanging off it in one
// transaction: answers, their votes, and bookmarks.
func (r *questionRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var answerIDs []uint
		if err := tx.Model(&models.Answer{}).Where("question_id = ?", id).Pluck("id", &answerIDs).Error; err != nil {
			return err
		}
		if len(answerIDs) > 0 {
			if err := tx.Where("answer_id IN ?", answerIDs).Delete(&models.Vote{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("question_id = ?", id).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", id).Delete(&models.Bookmark{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Question{}, id).Error
	})
}

// Search matches question text case-insensitively.
func (r *questionRepository) Search(query string) ([]models.Question, error) {
	var questions []models.Question
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.Preload("User").
		Where("lower(question) LIKE ? OR lower(description) LIKE ?", pattern, pattern).
		Find(&questions).Error
	return questions, err
}

package services

import (
	"errors"

	"techforum/models"
	"techforum/repositories"

	"gorm.io/gorm"
)

type QuestionService interface {
	Create(req models.CreateQuestionRequest, userID uint) (*models.Question, error)
	GetAll() ([]models.Question, error)
	GetPage(page models.Page) ([]models.Question, int64, error)
	GetByID(id uint) (*models.Question, error)
	GetByUser(userID uint) ([]models.Question, error)
	Update(id uint, req models.UpdateQuestionRequest) (*models.Question, error)
	Delete(id uint) error
	Search(query string) ([]models.Question, error)
}

type questionService struct {
	questionRepo repositories.QuestionRepository
}

func NewQuestionService(questionRepo repositories.QuestionRepository) QuestionService {
	return &questionService{questionRepo: questionRepo}
}

func (s *questionService) Create(req models.CreateQuestionRequest, userID uint) (*models.Question, error) {
	question := &models.Question{
		UserID:      userID,
		Question:    req.Question,
		Description: req.Description,
		Tags:        req.Tags,
	}
	if err := s.questionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *questionService) GetAll() ([]models.Question, error) {
	return s.questionRepo.GetAll()
}

func (s *questionService) GetPage(page models.Page) ([]models.Question, int64, error) {
	return s.questionRepo.GetPage(page)
}

func (s *questionService) GetByID(id uint) (*models.Question, error) {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return question, nil
}

func (s *questionService) GetByUser(userID uint) ([]models.Question, error) {
	return s.questionRepo.GetByUser(userID)
}

func (s *questionService) Update(id uint, req models.UpdateQuestionRequest) (*models.Question, error) {
	question, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Question != nil {
		question.Question = *req.Question
	}
	if req.Description != nil {
		question.Description = *req.Description
	}
	if req.Tags != nil {
		question.Tags = *req.Tags
	}

	if err := s.questionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *questionService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.questionRepo.Delete(id)
}

// Search preserves the source behavior of reporting an empty result set as
// not found rather than an empty page.
func (s *questionService) Search(query string) ([]models.Question, error) {
	questions, err := s.questionRepo.Search(query)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, models.ErrNotFound
	}
	return questions, nil
}

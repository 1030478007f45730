package services

import (
	"errors"

	"techforum/models"
	"techforum/repositories"

	"gorm.io/gorm"
)

type AnswerService interface {
	Create(req models.CreateAnswerRequest, userID uint) (*models.Answer, error)
	GetByQuestion(questionID uint) ([]models.Answer, error)
	Update(id uint, req models.UpdateAnswerRequest) error
	Delete(id uint) error
	Upvote(answerID, userID uint) (removed bool, err error)
	Downvote(answerID, userID uint) (removed bool, err error)
	HasUpvoted(answerID, userID uint) (bool, error)
	HasDownvoted(answerID, userID uint) (bool, error)
}

type answerService struct {
	answerRepo repositories.AnswerRepository
}

func NewAnswerService(answerRepo repositories.AnswerRepository) AnswerService {
	return &answerService{answerRepo: answerRepo}
}

func (s *answerService) Create(req models.CreateAnswerRequest, userID uint) (*models.Answer, error) {
	answer := &models.Answer{
		UserID:     userID,
		QuestionID: req.QuestionID,
		Answer:     req.Answer,
	}
	if err := s.answerRepo.Create(answer); err != nil {
		return nil, err
	}
	answer.Upvotes = []uint{}
	answer.Downvotes = []uint{}
	return answer, nil
}

func (s *answerService) GetByQuestion(questionID uint) ([]models.Answer, error) {
	return s.answerRepo.GetByQuestion(questionID)
}

func (s *answerService) Update(id uint, req models.UpdateAnswerRequest) error {
	answer, err := s.answerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	if req.Answer != nil {
		answer.Answer = *req.Answer
	}
	return s.answerRepo.Update(answer)
}

func (s *answerService) Delete(id uint) error {
	affected, err := s.answerRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrAlreadyDeleted
	}
	return nil
}

func (s *answerService) Upvote(answerID, userID uint) (bool, error) {
	return s.toggle(answerID, userID, models.VoteUp)
}

func (s *answerService) Downvote(answerID, userID uint) (bool, error) {
	return s.toggle(answerID, userID, models.VoteDown)
}

func (s *answerService) toggle(answerID, userID uint, value int) (bool, error) {
	removed, err := s.answerRepo.ToggleVote(answerID, userID, value)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, models.ErrNotFound
		}
		return false, err
	}
	return removed, nil
}

func (s *answerService) HasUpvoted(answerID, userID uint) (bool, error) {
	return s.answerRepo.HasVote(answerID, userID, models.VoteUp)
}

func (s *answerService) HasDownvoted(answerID, userID uint) (bool, error) {
	return s.answerRepo.HasVote(answerID, userID, models.VoteDown)
}

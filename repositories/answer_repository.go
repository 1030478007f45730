package repositories

import (
	"errors"

	"techforum/models"

	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(answer *models.Answer) error
	GetByQuestion(questionID uint) ([]models.Answer, error)
	GetByID(id uint) (*models.Answer, error)
	Update(answer *models.Answer) error
	Delete(id uint) (int64, error)
	ToggleVote(answerID, userID uint, value int) (removed bool, err error)
	HasVote(answerID, userID uint, value int) (bool, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *models.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) GetByQuestion(questionID uint) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.db.Preload("User").Preload("Votes").
		Where("question_id = ?", questionID).
		Find(&answers).Error
	return answers, err
}

func (r *answerRepository) GetByID(id uint) (*models.Answer, error) {
	var answer models.Answer
	err := r.db.Preload("Votes").First(&answer, id).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) Update(answer *models.Answer) error {
	return r.db.Save(answer).Error
}

// Delete reports how many rows went away so the caller can tell a repeat
// delete from a fresh one. Votes go with the answer.
func (r *answerRepository) Delete(id uint) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("answer_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Answer{}, id)
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}

// ToggleVote flips the caller's vote on an answer. Voting the same way
// twice removes the vote; voting the other way moves it. The whole
// read-modify-write runs in one transaction and the unique index on
// (answer_id, user_id) keeps concurrent requests from stacking rows.
func (r *answerRepository) ToggleVote(answerID, userID uint, value int) (bool, error) {
	var removed bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var answer models.Answer
		if err := tx.Select("id").First(&answer, answerID).Error; err != nil {
			return err
		}

		var vote models.Vote
		err := tx.Where("answer_id = ? AND user_id = ?", answerID, userID).First(&vote).Error
		switch {
		case err == nil && vote.Value == value:
			removed = true
			return tx.Delete(&vote).Error
		case err == nil:
			return tx.Model(&vote).Update("value", value).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&models.Vote{AnswerID: answerID, UserID: userID, Value: value}).Error
		default:
			return err
		}
	})
	return removed, err
}

// HasVote reports whether the user currently sits in the given vote set.
func (r *answerRepository) HasVote(answerID, userID uint, value int) (bool, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).
		Where("answer_id = ? AND user_id = ? AND value = ?", answerID, userID, value).
		Count(&count).Error
	return count > 0, err
}

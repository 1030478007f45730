package models

import (
	"time"
)

// Bookmark rows are unique per (user, question); re-bookmarking toggles the
// row away instead of duplicating it.
type Bookmark struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	UserID     uint      `json:"userId" gorm:"not null;index;uniqueIndex:idx_user_question"`
	QuestionID uint      `json:"questionId" gorm:"not null;index;uniqueIndex:idx_user_question"`
	Question   Question  `json:"question" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt  time.Time `json:"created_at"`
}

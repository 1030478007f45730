package models

import (
	"time"

	"gorm.io/gorm"
)

type Answer struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	UserID     uint      `json:"userId" gorm:"not null;index"`
	User       User      `json:"user" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	QuestionID uint      `json:"questionId" gorm:"not null;index"`
	Answer     string    `json:"answer" gorm:"type:text;not null"`
	Votes      []Vote    `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Filled from Votes when the relation is preloaded
	Upvotes   []uint `json:"upvotes" gorm:"-"`
	Downvotes []uint `json:"downvotes" gorm:"-"`
}

// AfterFind splits the vote rows into the two voter-id sets the API exposes.
// The unique index on (answer_id, user_id) guarantees the sets are disjoint.
func (a *Answer) AfterFind(tx *gorm.DB) error {
	a.Upvotes = make([]uint, 0, len(a.Votes))
	a.Downvotes = make([]uint, 0)
	for _, v := range a.Votes {
		if v.Value > 0 {
			a.Upvotes = append(a.Upvotes, v.UserID)
		} else {
			a.Downvotes = append(a.Downvotes, v.UserID)
		}
	}
	return nil
}

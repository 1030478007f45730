package models

import (
	"time"
)

// Vote values
const (
	VoteUp   = 1
	VoteDown = -1
)

// One row per (answer, user); the unique index is what makes the vote
// toggle safe under concurrent requests.
type Vote struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	AnswerID  uint      `json:"answerId" gorm:"not null;index;uniqueIndex:idx_answer_user"`
	UserID    uint      `json:"userId" gorm:"not null;index;uniqueIndex:idx_answer_user"`
	Value     int       `json:"value" gorm:"not null"` // 1 or -1
	CreatedAt time.Time `json:"created_at"`
}

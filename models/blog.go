package models

import (
	"time"
)

type Blog struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	UserID     uint      `json:"userId" gorm:"not null;index"`
	User       User      `json:"user" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content" gorm:"type:text"`
	IsApproved bool      `json:"isApproved" gorm:"default:false"`
	CreatedAt  time.Time `json:"createdDate"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Rendered markdown, filled on single reads only
	HTML string `json:"html,omitempty" gorm:"-"`
}

package models

import (
	"time"
)

type Question struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	UserID      uint      `json:"userId" gorm:"not null;index"`
	User        User      `json:"user" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Question    string    `json:"question" gorm:"not null"`
	Description string    `json:"questionDescribe" gorm:"type:text"`
	Tags        []string  `json:"tags" gorm:"serializer:json"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

package models

import (
	"time"
)

type Document struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	UserID     uint      `json:"userId" gorm:"not null;index"`
	User       User      `json:"user" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	FileName   string    `json:"fileName" gorm:"not null"`
	FileType   string    `json:"fileType"`
	DocData    []byte    `json:"docData"`
	IsApproved bool      `json:"isApproved" gorm:"default:false"`
	CreatedAt  time.Time `json:"createdDate"`
	UpdatedAt  time.Time `json:"updated_at"`
}

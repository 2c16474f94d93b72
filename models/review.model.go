package models

import "gorm.io/gorm"

// Review statuses set by the AI moderation flow
const (
	ReviewPending  = "PENDING"
	ReviewApproved = "APPROVED"
	ReviewRejected = "REJECTED"
)

type Review struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`                             // Who gave the review
	CourseID  uint   `gorm:"index;not null"`                             // Reviewed course
	Rating    int    `gorm:"not null;check:rating >= 1 AND rating <= 5"` // 1–5 rating
	Comment   string `gorm:"type:text;default:''"`                       // Optional comment
	Status    string `gorm:"default:'PENDING'"`                          // PENDING, APPROVED, REJECTED
	IsDeleted bool   `gorm:"default:false"`
}

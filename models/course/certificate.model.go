package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate statuses. A certificate only ever moves active -> revoked.
const (
	CertStatusActive  = "active"
	CertStatusRevoked = "revoked"
)

// Certificate represents an issued course-completion certificate.
// All fields except Status are immutable once the record is created; the
// course title and recipient name are snapshotted at issuance so later
// course or profile edits never alter historical certificates.
type Certificate struct {
	gorm.Model
	CertificateCode string    `json:"certificate_code" gorm:"uniqueIndex;not null"`
	CourseID        uint      `json:"course_id" gorm:"index;not null"`
	CourseTitle     string    `json:"course_title" gorm:"not null"`
	RecipientID     uint      `json:"recipient_id" gorm:"index;not null"`
	RecipientName   string    `json:"recipient_name" gorm:"not null"`
	IssueDate       time.Time `json:"issue_date" gorm:"not null"`
	Status          string    `json:"status" gorm:"default:'active'"` // active, revoked
}

func (Certificate) TableName() string {
	return "certificates"
}

package certificate

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	courseModels "courseverse/models/course"

	"github.com/go-playground/validator/v10"
)

const (
	// 16 random bytes -> 128 bits of entropy, 22-character URL-safe code
	codeByteLength = 16

	// Collisions are astronomically unlikely but still handled: regenerate
	// the code and retry the insert up to this many times.
	maxPutAttempts = 5
)

var validate = validator.New()

// IssueInput carries everything the issuer snapshots into the record.
type IssueInput struct {
	CourseID      uint   `json:"course_id" validate:"required"`
	CourseTitle   string `json:"course_title" validate:"required"`
	RecipientID   uint   `json:"recipient_id" validate:"required"`
	RecipientName string `json:"recipient_name" validate:"required"`
}

// Issuer creates new certificate records for confirmed course completions.
// It does not deduplicate learner+course pairs; that is the completion
// tracker's job before it calls Issue.
type Issuer struct {
	store RecordStore
}

func NewIssuer(store RecordStore) *Issuer {
	return &Issuer{store: store}
}

// Issue creates a globally-unique certificate record and returns it.
func (i *Issuer) Issue(ctx context.Context, input IssueInput) (*courseModels.Certificate, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for attempt := 0; attempt < maxPutAttempts; attempt++ {
		code, err := generateCode()
		if err != nil {
			return nil, fmt.Errorf("issue: %v", err)
		}

		record := &courseModels.Certificate{
			CertificateCode: code,
			CourseID:        input.CourseID,
			CourseTitle:     input.CourseTitle,
			RecipientID:     input.RecipientID,
			RecipientName:   input.RecipientName,
			IssueDate:       time.Now().UTC(),
			Status:          courseModels.CertStatusActive,
		}

		err = i.store.Put(ctx, record)
		if err == nil {
			return record, nil
		}
		if errors.Is(err, ErrAlreadyExists) {
			continue // fresh code, try again
		}
		return nil, err
	}

	return nil, fmt.Errorf("%w: exhausted %d code generation attempts", ErrIssuanceFailed, maxPutAttempts)
}

// generateCode produces a high-entropy URL-safe certificate code
func generateCode() (string, error) {
	buf := make([]byte, codeByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate code: %v", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

package certificate

import (
	"context"
	"errors"
	"time"

	courseModels "courseverse/models/course"
)

// Reasons returned for invalid verification results
const (
	ReasonRevoked  = "revoked"
	ReasonNotFound = "not_found"
)

// Summary is the public view of a certificate. It deliberately exposes only
// what a verifier needs to confirm authenticity; internal identifiers stay
// out of it.
type Summary struct {
	CourseTitle   string    `json:"course_title"`
	RecipientName string    `json:"recipient_name"`
	IssueDate     time.Time `json:"issue_date"`
	Status        string    `json:"status"`
}

// VerificationResult is the definite answer to a code-validity query.
type VerificationResult struct {
	Valid       bool     `json:"valid"`
	Reason      string   `json:"reason,omitempty"`
	Certificate *Summary `json:"certificate,omitempty"`
}

// Verifier answers public certificate-validity queries. Read-only.
type Verifier struct {
	store RecordStore
}

func NewVerifier(store RecordStore) *Verifier {
	return &Verifier{store: store}
}

// Verify resolves a certificate code to a validity verdict. An unknown code
// is a normal outcome, not an error; only store infrastructure failures are
// returned as errors.
func (v *Verifier) Verify(ctx context.Context, code string) (VerificationResult, error) {
	record, err := v.store.Get(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return VerificationResult{Valid: false, Reason: ReasonNotFound}, nil
		}
		return VerificationResult{}, err
	}

	if record.Status == courseModels.CertStatusRevoked {
		return VerificationResult{Valid: false, Reason: ReasonRevoked}, nil
	}

	return VerificationResult{
		Valid: true,
		Certificate: &Summary{
			CourseTitle:   record.CourseTitle,
			RecipientName: record.RecipientName,
			IssueDate:     record.IssueDate,
			Status:        record.Status,
		},
	}, nil
}

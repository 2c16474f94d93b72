package certificate

import (
	"context"
	"testing"
	"time"

	courseModels "courseverse/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() IssueInput {
	return IssueInput{
		CourseID:      1,
		CourseTitle:   "Intro to X",
		RecipientID:   7,
		RecipientName: "Jane Doe",
	}
}

func TestIssueCreatesActiveRecord(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store)

	before := time.Now().UTC()
	record, err := issuer.Issue(context.Background(), validInput())
	after := time.Now().UTC()

	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, uint(1), record.CourseID)
	assert.Equal(t, "Intro to X", record.CourseTitle)
	assert.Equal(t, uint(7), record.RecipientID)
	assert.Equal(t, "Jane Doe", record.RecipientName)
	assert.Equal(t, courseModels.CertStatusActive, record.Status)
	assert.Len(t, record.CertificateCode, 22)
	assert.False(t, record.IssueDate.Before(before), "issue date before call window")
	assert.False(t, record.IssueDate.After(after), "issue date after call window")

	// Read-your-writes: the record is in the store under its code
	got, err := store.Get(context.Background(), record.CertificateCode)
	require.NoError(t, err)
	assert.Equal(t, record.CertificateCode, got.CertificateCode)
	assert.Equal(t, courseModels.CertStatusActive, got.Status)
}

func TestIssueRejectsMissingFields(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store)

	cases := []IssueInput{
		{CourseTitle: "t", RecipientID: 1, RecipientName: "n"}, // missing course ID
		{CourseID: 1, RecipientID: 1, RecipientName: "n"},      // missing title
		{CourseID: 1, CourseTitle: "t", RecipientName: "n"},    // missing recipient ID
		{CourseID: 1, CourseTitle: "t", RecipientID: 1},        // missing name
	}

	for _, input := range cases {
		record, err := issuer.Issue(context.Background(), input)
		assert.Nil(t, record)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	// Rejected before any store interaction
	assert.Equal(t, 0, store.putCalls)
}

func TestIssueRetriesOnCollision(t *testing.T) {
	store := newFakeStore()
	store.failPuts = 1 // first insert collides, second succeeds
	issuer := NewIssuer(store)

	record, err := issuer.Issue(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, 2, store.putCalls, "expected one retry after the collision")
}

func TestIssueFailsWhenRetriesExhausted(t *testing.T) {
	store := newFakeStore()
	store.failPuts = maxPutAttempts // every attempt collides
	issuer := NewIssuer(store)

	record, err := issuer.Issue(context.Background(), validInput())
	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrIssuanceFailed)
	assert.Equal(t, maxPutAttempts, store.putCalls)
}

func TestIssuedCodesNeverCollide(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		record, err := issuer.Issue(context.Background(), validInput())
		require.NoError(t, err)
		assert.False(t, seen[record.CertificateCode], "duplicate code %q", record.CertificateCode)
		seen[record.CertificateCode] = true
	}
}

func TestGeneratedCodesAreURLSafe(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		require.Len(t, code, 22)
		for _, r := range code {
			ok := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
			assert.True(t, ok, "code %q contains non-URL-safe rune %q", code, r)
		}
	}
}

package certificate

import (
	"context"
	"errors"
	"testing"
	"time"

	courseModels "courseverse/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRecord(t *testing.T, store *fakeStore, status string) *courseModels.Certificate {
	t.Helper()
	record := &courseModels.Certificate{
		CertificateCode: "test-code-123",
		CourseID:        1,
		CourseTitle:     "Intro to X",
		RecipientID:     7,
		RecipientName:   "Jane Doe",
		IssueDate:       time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		Status:          status,
	}
	require.NoError(t, store.Put(context.Background(), record))
	return record
}

func TestVerifyActiveCertificate(t *testing.T) {
	store := newFakeStore()
	seedRecord(t, store, courseModels.CertStatusActive)
	verifier := NewVerifier(store)

	result, err := verifier.Verify(context.Background(), "test-code-123")
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Reason)
	require.NotNil(t, result.Certificate)
	assert.Equal(t, "Intro to X", result.Certificate.CourseTitle)
	assert.Equal(t, "Jane Doe", result.Certificate.RecipientName)
	assert.Equal(t, courseModels.CertStatusActive, result.Certificate.Status)
}

func TestVerifyRevokedCertificate(t *testing.T) {
	store := newFakeStore()
	seedRecord(t, store, courseModels.CertStatusRevoked)
	verifier := NewVerifier(store)

	result, err := verifier.Verify(context.Background(), "test-code-123")
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Equal(t, ReasonRevoked, result.Reason)
	assert.Nil(t, result.Certificate)
}

func TestVerifyUnknownCode(t *testing.T) {
	store := newFakeStore()
	verifier := NewVerifier(store)

	result, err := verifier.Verify(context.Background(), "no-such-code")
	require.NoError(t, err, "an unknown code is a verdict, not an error")

	assert.False(t, result.Valid)
	assert.Equal(t, ReasonNotFound, result.Reason)
}

func TestVerifyPropagatesInfraErrors(t *testing.T) {
	store := newFakeStore()
	store.infraErr = errors.New("connection refused")
	verifier := NewVerifier(store)

	_, err := verifier.Verify(context.Background(), "any")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestRevokeIsIdempotent(t *testing.T) {
	store := newFakeStore()
	seedRecord(t, store, courseModels.CertStatusActive)

	require.NoError(t, store.SetStatus(context.Background(), "test-code-123", courseModels.CertStatusRevoked))
	// Second revoke must not error
	require.NoError(t, store.SetStatus(context.Background(), "test-code-123", courseModels.CertStatusRevoked))

	rec, err := store.Get(context.Background(), "test-code-123")
	require.NoError(t, err)
	assert.Equal(t, courseModels.CertStatusRevoked, rec.Status)
}

func TestRevokeUnknownCodeFails(t *testing.T) {
	store := newFakeStore()
	err := store.SetStatus(context.Background(), "missing", courseModels.CertStatusRevoked)
	assert.ErrorIs(t, err, ErrNotFound)
}

// Full lifecycle: issue, verify valid, revoke, verify revoked, render notice.
func TestCertificateLifecycle(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store)
	verifier := NewVerifier(store)
	ctx := context.Background()

	record, err := issuer.Issue(ctx, IssueInput{
		CourseID:      1,
		CourseTitle:   "Intro to X",
		RecipientID:   7,
		RecipientName: "Jane Doe",
	})
	require.NoError(t, err)

	result, err := verifier.Verify(ctx, record.CertificateCode)
	require.NoError(t, err)
	require.True(t, result.Valid)
	assert.Equal(t, "Intro to X", result.Certificate.CourseTitle)
	assert.Equal(t, "Jane Doe", result.Certificate.RecipientName)

	require.NoError(t, store.SetStatus(ctx, record.CertificateCode, courseModels.CertStatusRevoked))

	result, err = verifier.Verify(ctx, record.CertificateCode)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, ReasonRevoked, result.Reason)

	revoked, err := store.Get(ctx, record.CertificateCode)
	require.NoError(t, err)
	doc, err := Render(revoked, RenderContext{
		Mode:            ModeCapture,
		VerificationURL: "https://example.com/verify-certificate?code=" + record.CertificateCode,
	})
	require.NoError(t, err)
	assert.Contains(t, string(doc), "Certificate Revoked")
	assert.NotContains(t, string(doc), "Jane Doe")
}

package certificate

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	courseModels "courseverse/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCaptureStore(t *testing.T) *fakeStore {
	t.Helper()
	store := newFakeStore()
	require.NoError(t, store.Put(context.Background(), &courseModels.Certificate{
		CertificateCode: "capture-code",
		CourseID:        1,
		CourseTitle:     "Intro to X",
		RecipientID:     7,
		RecipientName:   "Jane Doe",
		IssueDate:       time.Now().UTC(),
		Status:          courseModels.CertStatusActive,
	}))
	return store
}

func TestCapturePDFReturnsBytes(t *testing.T) {
	store := seedCaptureStore(t)

	var gotPath string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("%PDF-1.7 fake"))
	}))
	defer srv.Close()

	cc := NewCaptureClient(store, CaptureConfig{
		BrowserlessURL: srv.URL,
		AppBaseURL:     "https://courseverse.io",
		Timeout:        5 * time.Second,
	})

	pdf, err := cc.CapturePDF(context.Background(), "capture-code")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 fake", string(pdf))

	assert.Equal(t, "/pdf", gotPath)
	assert.Equal(t, "https://courseverse.io/pdf-render/capture-code", gotBody["url"])
}

func TestCaptureUnknownCodeSkipsBrowser(t *testing.T) {
	store := newFakeStore()

	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	cc := NewCaptureClient(store, CaptureConfig{BrowserlessURL: srv.URL, AppBaseURL: "https://courseverse.io"})

	_, err := cc.CapturePDF(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, called, "browser service must not be invoked for unknown codes")
}

func TestCaptureBrowserFailure(t *testing.T) {
	store := seedCaptureStore(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "browser crashed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cc := NewCaptureClient(store, CaptureConfig{
		BrowserlessURL: srv.URL,
		AppBaseURL:     "https://courseverse.io",
		Timeout:        5 * time.Second,
	})

	_, err := cc.CapturePDF(context.Background(), "capture-code")
	assert.ErrorIs(t, err, ErrCaptureError)
}

func TestCaptureTimesOut(t *testing.T) {
	store := seedCaptureStore(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cc := NewCaptureClient(store, CaptureConfig{
		BrowserlessURL: srv.URL,
		AppBaseURL:     "https://courseverse.io",
		Timeout:        50 * time.Millisecond,
	})

	_, err := cc.CapturePDF(context.Background(), "capture-code")
	assert.ErrorIs(t, err, ErrRenderTimeout)
}

func TestCaptureImageUsesScreenshotEndpoint(t *testing.T) {
	store := seedCaptureStore(t)

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("\x89PNG fake"))
	}))
	defer srv.Close()

	cc := NewCaptureClient(store, CaptureConfig{
		BrowserlessURL: srv.URL,
		AppBaseURL:     "https://courseverse.io",
		Timeout:        5 * time.Second,
	})

	img, err := cc.CaptureImage(context.Background(), "capture-code")
	require.NoError(t, err)
	assert.Equal(t, "/screenshot", gotPath)
	assert.NotEmpty(t, img)
}

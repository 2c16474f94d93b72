package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// geminiReply wraps text in the hosted API's response envelope
func geminiReply(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": text}},
			}},
		},
	}
}

func testClient(baseURL string) *Client {
	return &Client{
		http:    resty.New().SetTimeout(2 * time.Second),
		baseURL: baseURL,
		apiKey:  "test-key",
		model:   "gemini-1.5-flash",
	}
}

func TestGenerateTagsParsesModelReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		json.NewEncoder(w).Encode(geminiReply(`{"tags": ["go", "backend", "web"]}`))
	}))
	defer srv.Close()

	out, err := testClient(srv.URL).GenerateTags(context.Background(), GenerateTagsInput{
		Title:       "Intro to Go",
		Description: "Backend development with Go",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "backend", "web"}, out.Tags)
}

func TestModerateReviewVerdict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiReply(`{"approved": false, "reason": "contains spam links"}`))
	}))
	defer srv.Close()

	out, err := testClient(srv.URL).ModerateReview(context.Background(), ModerateReviewInput{
		Rating:  1,
		Comment: "buy followers at spam.example",
	})
	require.NoError(t, err)
	assert.False(t, out.Approved)
	assert.Equal(t, "contains spam links", out.Reason)
}

func TestGenerateFailsOnModelError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GenerateQuiz(context.Background(), GenerateQuizInput{CourseTitle: "x", LessonText: "y"})
	assert.Error(t, err)
}

func TestGenerateFailsOnMalformedReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiReply("sorry, I cannot help with that"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GenerateFAQ(context.Background(), GenerateFAQInput{CourseTitle: "x"})
	assert.Error(t, err)
}

func TestGenerateRequiresApiKey(t *testing.T) {
	c := testClient("http://unused")
	c.apiKey = ""
	_, err := c.GenerateTags(context.Background(), GenerateTagsInput{Title: "x"})
	assert.Error(t, err)
}

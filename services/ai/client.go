package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"courseverse/config"

	"github.com/go-resty/resty/v2"
)

// Client calls the hosted generative-language REST API. Every flow is a thin
// typed request/response wrapper around a single prompt; no model logic
// lives here.
type Client struct {
	http    *resty.Client
	baseURL string
	apiKey  string
	model   string
}

func NewClient() *Client {
	return &Client{
		http:    resty.New().SetTimeout(20 * time.Second),
		baseURL: config.AppConfig.GeminiApiURL,
		apiKey:  config.AppConfig.GeminiApiKey,
		model:   "gemini-1.5-flash",
	}
}

// generate sends a prompt and unmarshals the model's JSON reply into out.
func (c *Client) generate(ctx context.Context, prompt string, out interface{}) error {
	if c.apiKey == "" {
		return fmt.Errorf("ai: GEMINI_API_KEY not configured")
	}

	body := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		Post(fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model))
	if err != nil {
		return fmt.Errorf("ai: request failed: %v", err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("ai: model returned %d: %s", resp.StatusCode(), resp.String())
	}

	var parsed struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return fmt.Errorf("ai: invalid response: %v", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("ai: empty response")
	}

	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("ai: model reply is not the expected JSON: %v", err)
	}
	return nil
}

package certificate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// CaptureConfig points the orchestrator at the headless browser service and
// at this app's own public capture route.
type CaptureConfig struct {
	// BrowserlessURL is the base URL of a browserless-compatible HTTP API
	BrowserlessURL string
	// Token authenticates against the browserless service, if set
	Token string
	// AppBaseURL is the public base URL of this application, used to build
	// the capture target route the headless browser navigates to
	AppBaseURL string
	// Timeout bounds a single capture end to end
	Timeout time.Duration
}

// CaptureClient drives an external headless browser against the capture-mode
// render route to produce downloadable certificate artifacts. It only ever
// reads from the store; a failed or cancelled capture leaves nothing behind.
type CaptureClient struct {
	store RecordStore
	http  *resty.Client
	cfg   CaptureConfig
}

func NewCaptureClient(store RecordStore, cfg CaptureConfig) *CaptureClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &CaptureClient{
		store: store,
		http:  resty.New(),
		cfg:   cfg,
	}
}

// CapturePDF renders the certificate's capture-mode page to PDF bytes.
func (cc *CaptureClient) CapturePDF(ctx context.Context, code string) ([]byte, error) {
	body := map[string]interface{}{
		"url": cc.targetURL(code),
		"options": map[string]interface{}{
			"printBackground": true,
			"format":          "A4",
			"landscape":       true,
		},
		// Wait for fonts and the QR graphic before printing
		"gotoOptions": map[string]interface{}{
			"waitUntil": "networkidle0",
		},
	}
	return cc.capture(ctx, code, "/pdf", body)
}

// CaptureImage renders the certificate's capture-mode page to a PNG raster.
func (cc *CaptureClient) CaptureImage(ctx context.Context, code string) ([]byte, error) {
	body := map[string]interface{}{
		"url": cc.targetURL(code),
		"options": map[string]interface{}{
			"fullPage": true,
			"type":     "png",
		},
		"gotoOptions": map[string]interface{}{
			"waitUntil": "networkidle0",
		},
	}
	return cc.capture(ctx, code, "/screenshot", body)
}

func (cc *CaptureClient) capture(ctx context.Context, code, endpoint string, body map[string]interface{}) ([]byte, error) {
	// Confirm the certificate exists before spinning up a browser; the
	// capture route would only render a missing-certificate page anyway.
	if _, err := cc.store.Get(ctx, code); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cc.cfg.Timeout)
	defer cancel()

	req := cc.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if cc.cfg.Token != "" {
		req.SetQueryParam("token", cc.cfg.Token)
	}

	resp, err := req.Post(cc.cfg.BrowserlessURL + endpoint)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s after %s", ErrRenderTimeout, code, cc.cfg.Timeout)
		}
		return nil, fmt.Errorf("%w: %v", ErrCaptureError, err)
	}
	if resp.StatusCode() != 200 {
		log.Printf("[CERTIFICATE] capture of %s failed: %d %s", code, resp.StatusCode(), resp.String())
		return nil, fmt.Errorf("%w: browser service returned %d", ErrCaptureError, resp.StatusCode())
	}

	return resp.Body(), nil
}

func (cc *CaptureClient) targetURL(code string) string {
	return fmt.Sprintf("%s/pdf-render/%s", cc.cfg.AppBaseURL, code)
}

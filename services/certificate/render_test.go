package certificate

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	courseModels "courseverse/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() *courseModels.Certificate {
	return &courseModels.Certificate{
		CertificateCode: "AbCdEf1234567890AbCdEf",
		CourseID:        1,
		CourseTitle:     "Intro to X",
		RecipientID:     7,
		RecipientName:   "Jane Doe",
		IssueDate:       time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		Status:          courseModels.CertStatusActive,
	}
}

// testLogo builds a small in-memory PNG for the QR overlay
func testLogo(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			img.Set(x, y, color.NRGBA{R: 30, G: 60, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func captureContext(t *testing.T) RenderContext {
	return RenderContext{
		Mode:            ModeCapture,
		VerificationURL: "https://courseverse.io/verify-certificate?code=AbCdEf1234567890AbCdEf",
		Logo:            testLogo(t),
	}
}

func TestCaptureRenderIsDeterministic(t *testing.T) {
	record := testRecord()
	rc := captureContext(t)

	first, err := Render(record, rc)
	require.NoError(t, err)
	second, err := Render(record, rc)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second), "capture render must be byte-identical for identical inputs")
}

func TestRenderContainsCertificateBody(t *testing.T) {
	record := testRecord()

	for _, mode := range []RenderMode{ModeCapture, ModeInteractive} {
		rc := captureContext(t)
		rc.Mode = mode
		doc, err := Render(record, rc)
		require.NoError(t, err)

		html := string(doc)
		assert.Contains(t, html, "Jane Doe")
		assert.Contains(t, html, "Intro to X")
		assert.Contains(t, html, "March 14, 2026")
		assert.Contains(t, html, record.CertificateCode)
		assert.Contains(t, html, "data:image/png;base64,", "verification QR must be embedded")
	}
}

func TestCaptureModeOmitsChrome(t *testing.T) {
	record := testRecord()

	rc := captureContext(t)
	capture, err := Render(record, rc)
	require.NoError(t, err)

	rc.Mode = ModeInteractive
	interactive, err := Render(record, rc)
	require.NoError(t, err)

	// The verify bar and theme adaptation belong to interactive mode only
	assert.NotContains(t, string(capture), "verify-bar")
	assert.NotContains(t, string(capture), "prefers-color-scheme")
	assert.Contains(t, string(interactive), "verify-bar")
	assert.Contains(t, string(interactive), "prefers-color-scheme")
	assert.Contains(t, string(interactive), rc.VerificationURL)
}

func TestRenderRevokedNotice(t *testing.T) {
	record := testRecord()
	record.Status = courseModels.CertStatusRevoked

	for _, mode := range []RenderMode{ModeCapture, ModeInteractive} {
		doc, err := Render(record, RenderContext{Mode: mode, VerificationURL: "https://courseverse.io/verify-certificate?code=x"})
		require.NoError(t, err)

		html := string(doc)
		assert.Contains(t, html, "Certificate Revoked")
		assert.Contains(t, html, record.CertificateCode)
		// No certificate body artwork
		assert.NotContains(t, html, "Certificate of Completion")
		assert.NotContains(t, html, "Jane Doe")
	}
}

func TestRenderWithoutLogoStillEmbedsQR(t *testing.T) {
	record := testRecord()
	doc, err := Render(record, RenderContext{
		Mode:            ModeCapture,
		VerificationURL: "https://courseverse.io/verify-certificate?code=AbCdEf1234567890AbCdEf",
	})
	require.NoError(t, err)
	assert.Contains(t, string(doc), "data:image/png;base64,")
}

func TestVerificationQRDataURIIsDeterministic(t *testing.T) {
	logo := testLogo(t)
	first, err := verificationQRDataURI("https://courseverse.io/verify-certificate?code=abc", logo)
	require.NoError(t, err)
	second, err := verificationQRDataURI("https://courseverse.io/verify-certificate?code=abc", logo)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "data:image/png;base64,"))
}

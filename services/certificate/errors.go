package certificate

import "errors"

// Sentinel errors for the certificate pipeline. Callers match these with
// errors.Is; the HTTP layer maps them onto response codes.
var (
	// ErrNotFound means no certificate exists for the given code.
	ErrNotFound = errors.New("certificate not found")

	// ErrAlreadyExists means an insert collided on the certificate code.
	// Recoverable: the issuer regenerates the code and retries.
	ErrAlreadyExists = errors.New("certificate code already exists")

	// ErrIssuanceFailed means code regeneration retries were exhausted.
	ErrIssuanceFailed = errors.New("certificate issuance failed")

	// ErrInvalidInput means a required issuance field was missing or empty.
	// Raised before any store interaction.
	ErrInvalidInput = errors.New("invalid issuance input")

	// ErrRenderTimeout means the capture target did not stabilize within
	// the configured deadline.
	ErrRenderTimeout = errors.New("certificate capture timed out")

	// ErrCaptureError means the headless browser service itself failed.
	ErrCaptureError = errors.New("certificate capture failed")
)

package certificateController

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"courseverse/config"
	"courseverse/database"
	"courseverse/middleware"
	"courseverse/models"
	courseModels "courseverse/models/course"
	"courseverse/services/certificate"

	"github.com/gofiber/fiber/v2"
)

// Pipeline components, constructed once at process start by Init and shared
// by every handler.
var (
	certStore     certificate.RecordStore
	verifier      *certificate.Verifier
	captureClient *certificate.CaptureClient
	certLogo      []byte
)

// Init wires the certificate pipeline against the live database connection.
// Called from main after the database is connected.
func Init() {
	certStore = certificate.NewGormStore(database.Database.Db)
	verifier = certificate.NewVerifier(certStore)
	captureClient = certificate.NewCaptureClient(certStore, certificate.CaptureConfig{
		BrowserlessURL: config.AppConfig.BrowserlessURL,
		Token:          config.AppConfig.BrowserlessToken,
		AppBaseURL:     config.AppConfig.PublicBaseURL,
		Timeout:        time.Duration(config.AppConfig.CaptureTimeoutSecs) * time.Second,
	})

	logo, err := os.ReadFile(config.AppConfig.CertLogoPath)
	if err != nil {
		log.Printf("[CERTIFICATE] Logo not loaded from %s: %v (QR renders without logo)", config.AppConfig.CertLogoPath, err)
		logo = nil
	}
	certLogo = logo
}

// VerifyCertificate is the public code-validity lookup. It always answers
// with a definite verdict; only store infrastructure failures become errors.
func VerifyCertificate(c *fiber.Ctx) error {
	code := c.Query("code")

	result, err := verifier.Verify(c.UserContext(), code)
	if err != nil {
		log.Printf("[CERTIFICATE] Verification lookup failed for %q: %v", code, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Verification temporarily unavailable!", nil)
	}

	message := "Certificate is valid."
	if !result.Valid {
		message = "Certificate is not valid."
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, result)
}

// RenderCertificate serves the interactive isolated-layout certificate page
func RenderCertificate(c *fiber.Ctx) error {
	return renderPage(c, certificate.ModeInteractive)
}

// PdfRenderCertificate serves the capture-mode page the headless browser
// navigates to: fixed dark theme, no chrome, deterministic bytes.
func PdfRenderCertificate(c *fiber.Ctx) error {
	return renderPage(c, certificate.ModeCapture)
}

func renderPage(c *fiber.Ctx, mode certificate.RenderMode) error {
	code := c.Params("code")

	record, err := certStore.Get(c.UserContext(), code)
	if err != nil {
		if errors.Is(err, certificate.ErrNotFound) {
			c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
			return c.Status(fiber.StatusNotFound).SendString(missingCertificatePage)
		}
		log.Printf("[CERTIFICATE] Render lookup failed for %q: %v", code, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load certificate!", nil)
	}

	doc, err := certificate.Render(record, certificate.RenderContext{
		Mode:            mode,
		VerificationURL: buildVerificationURL(c, record.CertificateCode),
		Logo:            certLogo,
	})
	if err != nil {
		log.Printf("[CERTIFICATE] Render failed for %q: %v", code, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to render certificate!", nil)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(doc)
}

// DownloadCertificate produces the PDF artifact through the headless
// capture orchestrator. Owner or admin only.
func DownloadCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	code := c.Params("code")

	record, err := certStore.Get(c.UserContext(), code)
	if err != nil {
		if errors.Is(err, certificate.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load certificate!", nil)
	}

	if record.RecipientID != userID && !isAdmin(userID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this certificate!", nil)
	}

	pdf, err := captureClient.CapturePDF(c.UserContext(), code)
	if err != nil {
		switch {
		case errors.Is(err, certificate.ErrRenderTimeout):
			return middleware.JsonResponse(c, fiber.StatusGatewayTimeout, false, "Certificate rendering timed out, please retry!", nil)
		case errors.Is(err, certificate.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
		default:
			log.Printf("[CERTIFICATE] Capture failed for %q: %v", code, err)
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Certificate rendering failed, please retry!", nil)
		}
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="certificate-%s.pdf"`, code))
	return c.Send(pdf)
}

// AdminRevokeCertificate revokes a certificate. One-way and idempotent: a
// second revoke succeeds without changing anything.
func AdminRevokeCertificate(c *fiber.Ctx) error {
	code := c.Params("code")

	err := certStore.SetStatus(c.UserContext(), code, courseModels.CertStatusRevoked)
	if err != nil {
		if errors.Is(err, certificate.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
		}
		log.Printf("[CERTIFICATE] Revoke failed for %q: %v", code, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to revoke certificate!", nil)
	}

	// Audit log is best-effort and never fails the revoke
	if adminID, ok := c.Locals("userId").(uint); ok {
		log.Printf("[CERTIFICATE] Certificate %s revoked by admin %d", code, adminID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate revoked successfully!", nil)
}

// AdminListCertificates lists issued certificates with pagination
func AdminListCertificates(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Certificate{})

	var total int64
	db.Count(&total)

	var certificates []courseModels.Certificate
	if err := db.Offset(offset).Limit(limit).Order("issue_date desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": certificates,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// buildVerificationURL reconstructs the public verification URL from the
// request. Reverse-proxy forwarded headers win over the raw Host header.
func buildVerificationURL(c *fiber.Ctx, code string) string {
	scheme := c.Get("X-Forwarded-Proto")
	if scheme == "" {
		scheme = c.Protocol()
	}
	host := c.Get("X-Forwarded-Host")
	if host == "" {
		host = c.Hostname()
	}
	return fmt.Sprintf("%s://%s/verify-certificate?code=%s", scheme, host, url.QueryEscape(code))
}

func isAdmin(userID uint) bool {
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return false
	}
	return user.Role == "ADMIN"
}

const missingCertificatePage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"/><title>Certificate Not Found</title>
<style>html,body{margin:0;background:#f8fafc;color:#0f172a;font-family:sans-serif}.missing{max-width:560px;margin:120px auto;text-align:center}</style>
</head>
<body><div class="missing"><h1>Certificate Not Found</h1><p>No certificate exists for this code.</p></div></body>
</html>
`

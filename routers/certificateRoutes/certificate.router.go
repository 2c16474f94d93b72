package certificateRoutes

import (
	controllers "courseverse/controllers/certificate"
	"courseverse/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupCertificateRoutes sets up the public certificate routes
func SetupCertificateRoutes(app *fiber.App) {
	// Public verification lookup; safe to call without authentication
	app.Get("/verify-certificate", controllers.VerifyCertificate)

	// Interactive isolated-layout render (certificate codes are unguessable,
	// so possession of the link is the access control)
	app.Get("/certificate/:code/render", controllers.RenderCertificate)

	// Capture-mode render, the headless browser's navigation target
	app.Get("/pdf-render/:code", controllers.PdfRenderCertificate)

	// PDF download via the capture orchestrator (owner or admin)
	app.Get("/certificate/:code/download", middleware.JWTMiddleware, controllers.DownloadCertificate)
}

package courseRoutes

import (
	aiControllers "courseverse/controllers/ai"
	certControllers "courseverse/controllers/certificate"
	controllers "courseverse/controllers/course"
	"courseverse/middleware"
	validators "courseverse/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin panel routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	// Course management
	adminGroup.Post("/courses", validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Put("/courses/:id", validators.CourseIDParam("id"), validators.CreateCourseAdmin(), controllers.AdminUpdateCourse)
	adminGroup.Post("/courses/:id/publish", validators.CourseIDParam("id"), controllers.AdminPublishCourse)
	adminGroup.Post("/courses/:id/content", validators.CourseIDParam("id"), validators.CreateContentAdmin(), controllers.AdminCreateCourseContent)

	// AI generation flows
	adminGroup.Post("/courses/:id/generate-tags", validators.CourseIDParam("id"), aiControllers.AdminGenerateCourseTags)
	adminGroup.Post("/courses/:id/generate-faq", validators.CourseIDParam("id"), aiControllers.AdminGenerateCourseFAQ)
	adminGroup.Post("/courses/:course_id/content/:content_id/generate-quiz",
		validators.CourseIDParam("course_id"),
		validators.ContentIDParam(),
		aiControllers.AdminGenerateCourseQuiz)

	// Certificate administration
	adminGroup.Get("/certificates", certControllers.AdminListCertificates)
	adminGroup.Post("/certificates/:code/revoke", certControllers.AdminRevokeCertificate)
}

package courseRoutes

import (
	controllers "courseverse/controllers/course"
	"courseverse/middleware"
	validators "courseverse/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	userGroup := app.Group("/course")

	// Course listing and details (published courses)
	userGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	userGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseIDParam("id"), controllers.GetCourseDetails)

	// Enrollment
	userGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseIDParam("id"), controllers.EnrollInCourse)

	// Content viewing (for enrolled users)
	userGroup.Get("/:id/content", middleware.JWTMiddleware, validators.CourseIDParam("id"), controllers.GetCourseContent)

	// Content completion; the last lesson confirms completion and issues
	// the certificate
	userGroup.Post("/:course_id/content/:content_id/complete",
		middleware.JWTMiddleware,
		validators.CourseIDParam("course_id"),
		validators.ContentIDParam(),
		controllers.MarkContentComplete)

	// Reviews
	userGroup.Get("/:id/reviews", validators.CourseIDParam("id"), controllers.GetCourseReviews)
	userGroup.Post("/:id/reviews",
		middleware.JWTMiddleware,
		validators.CourseIDParam("id"),
		validators.CreateReview(),
		controllers.CreateReview)

	// User enrollments and certificates
	userEnrollGroup := app.Group("/user")
	userEnrollGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetUserEnrollmentsList)
	userEnrollGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)
}

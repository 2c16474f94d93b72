package controllers

import (
	"fmt"
	"log"
	"net/url"
	"time"

	"courseverse/config"
	"courseverse/database"
	"courseverse/middleware"
	"courseverse/models"
	courseModels "courseverse/models/course"
	"courseverse/services/certificate"
	"courseverse/utils"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the authenticated user in a published course
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	// Check if course exists and is active
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND status = ?", courseID, false, "ACTIVE").First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	// Check if user is already enrolled
	var existingEnrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	var totalContents int64
	database.Database.Db.Model(&courseModels.CourseContent{}).
		Where("course_id = ? AND is_published = ? AND is_deleted = ?", courseID, true, false).
		Count(&totalContents)

	enrollment := courseModels.Enrollment{
		UserID:        userID,
		CourseID:      uint(courseID),
		Status:        "ENROLLED",
		TotalContents: int(totalContents),
	}

	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// MarkContentComplete records a finished lesson and, when it was the last
// one, confirms course completion and issues the certificate.
func MarkContentComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	contentID := c.Locals("contentID").(int)

	db := database.Database.Db

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var content courseModels.CourseContent
	if err := db.Where("id = ? AND course_id = ? AND is_published = ? AND is_deleted = ?", contentID, courseID, true, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	// Ignore repeat completions of the same lesson
	var existing courseModels.ContentCompletion
	if err := db.Where("user_id = ? AND course_content_id = ? AND is_deleted = ?", userID, contentID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Content already marked complete.", enrollment)
	}

	completion := courseModels.ContentCompletion{
		UserID:          userID,
		CourseID:        uint(courseID),
		CourseContentID: uint(contentID),
		Status:          "COMPLETED",
	}
	if err := db.Create(&completion).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark content complete!", nil)
	}

	// Recompute progress
	var completedCount int64
	db.Model(&courseModels.ContentCompletion{}).
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		Count(&completedCount)

	enrollment.CompletedContents = int(completedCount)
	if enrollment.TotalContents > 0 {
		enrollment.Progress = float64(completedCount) / float64(enrollment.TotalContents) * 100
	}

	completedNow := enrollment.TotalContents > 0 && int(completedCount) >= enrollment.TotalContents
	if completedNow && enrollment.Status != "COMPLETED" {
		now := time.Now()
		enrollment.Status = "COMPLETED"
		enrollment.CompletedAt = &now
	} else if enrollment.Status == "ENROLLED" {
		enrollment.Status = "IN_PROGRESS"
	}

	if err := db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	// Completion confirmed: issue the certificate, unless the learner
	// already holds one for this course.
	if completedNow {
		if record, err := issueCertificateForCompletion(c, userID, enrollment.CourseID); err != nil {
			log.Printf("[CERTIFICATE] Failed to issue certificate for user %d course %d: %v", userID, courseID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Course completed, but certificate issuance failed!", nil)
		} else if record != nil {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Course completed! Certificate issued.", fiber.Map{
				"enrollment":  enrollment,
				"certificate": record,
			})
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content marked complete.", enrollment)
}

// issueCertificateForCompletion deduplicates per learner+course, then hands
// off to the issuance service. Returns nil without error when a certificate
// already exists.
func issueCertificateForCompletion(c *fiber.Ctx, userID, courseID uint) (*courseModels.Certificate, error) {
	db := database.Database.Db

	var existingCert courseModels.Certificate
	if err := db.Where("recipient_id = ? AND course_id = ?", userID, courseID).First(&existingCert).Error; err == nil {
		return nil, nil
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil, fmt.Errorf("load user: %v", err)
	}
	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return nil, fmt.Errorf("load course: %v", err)
	}

	issuer := certificate.NewIssuer(certificate.NewGormStore(db))
	record, err := issuer.Issue(c.UserContext(), certificate.IssueInput{
		CourseID:      course.ID,
		CourseTitle:   course.Title,
		RecipientID:   user.ID,
		RecipientName: user.Name,
	})
	if err != nil {
		return nil, err
	}

	// Congratulation email is best-effort and must never fail issuance
	verificationURL := fmt.Sprintf("%s/verify-certificate?code=%s",
		config.AppConfig.PublicBaseURL, url.QueryEscape(record.CertificateCode))
	go utils.SendCertificateEmail(user.Email, user.Name, course.Title, verificationURL)

	return record, nil
}

// GetUserEnrollmentsList gets all enrollments for the current user
func GetUserEnrollmentsList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type EnrollmentWithCourse struct {
		courseModels.Enrollment
		CourseName   string `json:"course_name"`
		CourseAuthor string `json:"course_author"`
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]EnrollmentWithCourse, len(enrollments))
	for i, e := range enrollments {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", e.CourseID).First(&course)
		result[i] = EnrollmentWithCourse{
			Enrollment:   e,
			CourseName:   course.Title,
			CourseAuthor: course.Author,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"total":       len(result),
	})
}

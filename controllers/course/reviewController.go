package controllers

import (
	"log"

	"courseverse/database"
	"courseverse/middleware"
	"courseverse/models"
	courseModels "courseverse/models/course"
	"courseverse/services/ai"

	"github.com/gofiber/fiber/v2"
)

// CreateReview submits a course review; the AI moderation flow decides
// whether it is published immediately.
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedReview").(*struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Only enrolled learners can review
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var existing models.Review
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reviewed this course!", nil)
	}

	review := models.Review{
		UserID:   userID,
		CourseID: uint(courseID),
		Rating:   reqData.Rating,
		Comment:  reqData.Comment,
		Status:   models.ReviewPending,
	}

	// Moderation is advisory: if the AI flow is down, the review stays
	// pending for a later pass rather than blocking submission.
	verdict, err := ai.NewClient().ModerateReview(c.UserContext(), ai.ModerateReviewInput{
		Rating:  reqData.Rating,
		Comment: reqData.Comment,
	})
	if err != nil {
		log.Printf("[REVIEW] Moderation unavailable for user %d course %d: %v", userID, courseID, err)
	} else if verdict.Approved {
		review.Status = models.ReviewApproved
	} else {
		review.Status = models.ReviewRejected
		log.Printf("[REVIEW] Rejected review from user %d for course %d: %s", userID, courseID, verdict.Reason)
	}

	if err := database.Database.Db.Create(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully!", review)
}

// GetCourseReviews lists approved reviews for a course
func GetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var reviews []models.Review
	if err := database.Database.Db.
		Where("course_id = ? AND status = ? AND is_deleted = ?", courseID, models.ReviewApproved, false).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", fiber.Map{
		"reviews": reviews,
		"total":   len(reviews),
	})
}

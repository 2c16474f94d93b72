package aiController

import (
	"strings"

	"courseverse/database"
	"courseverse/middleware"
	courseModels "courseverse/models/course"
	"courseverse/services/ai"

	"github.com/gofiber/fiber/v2"
)

// AdminGenerateCourseTags suggests and saves catalog tags for a course
func AdminGenerateCourseTags(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	out, err := ai.NewClient().GenerateTags(c.UserContext(), ai.GenerateTagsInput{
		Title:       course.Title,
		Description: course.Description,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Tag generation failed!", nil)
	}

	course.Tags = strings.Join(out.Tags, ",")
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save tags!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tags generated successfully!", fiber.Map{
		"tags": out.Tags,
	})
}

// AdminGenerateCourseQuiz drafts a quiz from a lesson's text content
func AdminGenerateCourseQuiz(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	contentID := c.Locals("contentID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var content courseModels.CourseContent
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", contentID, courseID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	out, err := ai.NewClient().GenerateQuiz(c.UserContext(), ai.GenerateQuizInput{
		CourseTitle: course.Title,
		LessonText:  content.TextContent,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Quiz generation failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz generated successfully!", out)
}

// AdminGenerateCourseFAQ drafts FAQ entries for a course landing page
func AdminGenerateCourseFAQ(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	out, err := ai.NewClient().GenerateFAQ(c.UserContext(), ai.GenerateFAQInput{
		CourseTitle: course.Title,
		Description: course.Description,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "FAQ generation failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "FAQ generated successfully!", out)
}

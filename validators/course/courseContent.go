package courseValidator

import (
	"strings"

	"courseverse/middleware"

	"github.com/gofiber/fiber/v2"
)

var allowedContentTypes = map[string]bool{
	"TEXT":  true,
	"VIDEO": true,
	"IMAGE": true,
}

// CreateContentAdmin validates admin lesson creation requests
func CreateContentAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			ContentType string `json:"content_type"`
			TextContent string `json:"text_content"`
			VideoURL    string `json:"video_url"`
			ImageURL    string `json:"image_url"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.ContentType = strings.ToUpper(strings.TrimSpace(reqData.ContentType))

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}

		if reqData.ContentType == "" {
			reqData.ContentType = "TEXT"
		} else if !allowedContentTypes[reqData.ContentType] {
			errors["content_type"] = "Content type must be TEXT, VIDEO or IMAGE!"
		}

		if reqData.ContentType == "TEXT" && strings.TrimSpace(reqData.TextContent) == "" {
			errors["text_content"] = "Text content is required for TEXT type!"
		}
		if reqData.ContentType == "VIDEO" && strings.TrimSpace(reqData.VideoURL) == "" {
			errors["video_url"] = "Video URL is required for VIDEO type!"
		}
		if reqData.ContentType == "IMAGE" && strings.TrimSpace(reqData.ImageURL) == "" {
			errors["image_url"] = "Image URL is required for IMAGE type!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}

// CreateReview validates review submission requests
func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Rating  int    `json:"rating"`
			Comment string `json:"comment"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Comment = strings.TrimSpace(reqData.Comment)

		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}
		if len(reqData.Comment) > 2000 {
			errors["comment"] = "Comment must be at most 2000 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

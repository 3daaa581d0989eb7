package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// CreateCourseRequest is the validated body for admin course creation.
type CreateCourseRequest struct {
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description"`
	Type         string   `json:"type"`
	Price        uint     `json:"price"`
	Tags         []string `json:"tags"`
	ThumbnailURL string   `json:"thumbnailUrl"`
}

// EditCourseRequest is the validated body for admin course updates. Nil
// pointers mean "leave unchanged".
type EditCourseRequest struct {
	CourseID     uint     `json:"courseId"`
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Type         *string  `json:"type"`
	Price        *uint    `json:"price"`
	Tags         []string `json:"tags"`
	ThumbnailURL *string  `json:"thumbnailUrl"`
	IsPublished  *bool    `json:"isPublished"`
}

func isValidCourseType(t string) bool {
	return t == models.CourseTypeFree || t == models.CourseTypePaid || t == models.CourseTypeVip
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Slug
		if strings.TrimSpace(reqData.Slug) == "" {
			errors["slug"] = "Slug is required!"
		}

		// Validate Type
		if reqData.Type == "" {
			reqData.Type = models.CourseTypeFree
		} else if !isValidCourseType(reqData.Type) {
			errors["type"] = "Type must be one of free, paid, vip!"
		}

		if reqData.Type != models.CourseTypePaid && reqData.Price > 0 {
			errors["price"] = "Only paid courses can have a price!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func EditCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EditCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course id is required!"
		}
		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.Type != nil && !isValidCourseType(*reqData.Type) {
			errors["type"] = "Type must be one of free, paid, vip!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseEdit", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route param and stores it as an int in Locals.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}

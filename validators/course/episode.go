package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateEpisodeRequest is the validated body for admin episode creation.
type CreateEpisodeRequest struct {
	CourseID    uint   `json:"courseId"`
	Title       string `json:"title"`
	Number      int    `json:"number"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Time        string `json:"time"`
	IsPublished *bool  `json:"isPublished"` // defaults to published
}

// EditEpisodeRequest is the validated body for admin episode updates.
type EditEpisodeRequest struct {
	EpisodeID   uint    `json:"episodeId"`
	Title       *string `json:"title"`
	Number      *int    `json:"number"`
	Type        *string `json:"type"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	Time        *string `json:"time"`
	IsPublished *bool   `json:"isPublished"`
}

// isDurationShape accepts "MM:SS" or "HH:MM:SS" with numeric fields. The
// duration aggregator degrades gracefully on bad input, but episodes should
// never be stored with a shape it cannot use.
func isDurationShape(t string) bool {
	fields := strings.Split(t, ":")
	if len(fields) != 2 && len(fields) != 3 {
		return false
	}
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return false
		}
	}
	return true
}

func CreateEpisode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateEpisodeRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course id is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.URL) == "" {
			errors["url"] = "Video URL is required!"
		}
		if reqData.Type == "" {
			reqData.Type = "free"
		} else if reqData.Type != "free" && reqData.Type != "paid" {
			errors["type"] = "Type must be free or paid!"
		}
		if reqData.Time == "" {
			reqData.Time = "00:00:00"
		} else if !isDurationShape(reqData.Time) {
			errors["time"] = "Time must be MM:SS or HH:MM:SS!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEpisode", reqData)
		return c.Next()
	}
}

func EditEpisode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EditEpisodeRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.EpisodeID == 0 {
			errors["episodeId"] = "Episode id is required!"
		}
		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title cannot be empty!"
		}
		if reqData.Time != nil && !isDurationShape(*reqData.Time) {
			errors["time"] = "Time must be MM:SS or HH:MM:SS!"
		}
		if reqData.Type != nil && *reqData.Type != "free" && *reqData.Type != "paid" {
			errors["type"] = "Type must be free or paid!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEpisodeEdit", reqData)
		return c.Next()
	}
}

// EpisodeID validates the :id route param and stores it as an int in Locals.
func EpisodeID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid episode id!", nil)
		}
		c.Locals("episodeID", id)
		return c.Next()
	}
}

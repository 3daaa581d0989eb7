package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	// Catalog; anonymous viewers are fine, signed-in viewers get canUse
	courseGroup.Get("/", middleware.OptionalJWT, controllers.GetCourses)
	courseGroup.Get("/:slug", middleware.OptionalJWT, controllers.GetCourseBySlug)

	// Rating and likes
	courseGroup.Post("/:id/rate", middleware.JWTMiddleware, validators.RateCourse(), controllers.RateCourse)
	courseGroup.Post("/:id/like", middleware.JWTMiddleware, validators.CourseID(), controllers.ToggleCourseLike)
}

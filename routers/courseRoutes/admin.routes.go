package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up all admin panel routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	// Course management
	adminGroup.Get("/courses", middleware.JWTMiddleware, controllers.AdminListCourses)
	adminGroup.Post("/courses", middleware.JWTMiddleware, validators.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Put("/courses", middleware.JWTMiddleware, validators.EditCourse(), controllers.AdminEditCourse)
	adminGroup.Delete("/courses/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.AdminDeleteCourse)

	// Episode management
	adminGroup.Get("/episodes", middleware.JWTMiddleware, controllers.AdminListEpisodes)
	adminGroup.Post("/episodes", middleware.JWTMiddleware, validators.CreateEpisode(), controllers.AdminCreateEpisode)
	adminGroup.Put("/episodes", middleware.JWTMiddleware, validators.EditEpisode(), controllers.AdminEditEpisode)
	adminGroup.Delete("/episodes/:id", middleware.JWTMiddleware, validators.EpisodeID(), controllers.AdminDeleteEpisode)
}

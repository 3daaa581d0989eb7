package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/services/access"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// enrollmentStore answers the access policy's enrollment checks from the
// database.
type enrollmentStore struct {
	db *gorm.DB
}

func (s enrollmentStore) IsEnrolled(userID, courseID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND status = ? AND is_deleted = ?", userID, courseID, "ACTIVE", false).
		Count(&count).Error
	return count > 0, err
}

func coursePolicy() access.Policy {
	return access.Policy{Enrollments: enrollmentStore{db: database.Database.Db}}
}

// viewerFromCtx builds the policy viewer from whatever the JWT middleware
// put in Locals. Returns nil for anonymous requests.
func viewerFromCtx(c *fiber.Ctx) *access.Viewer {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil
	}
	isVip, _ := c.Locals("isVip").(bool)
	return &access.Viewer{ID: userID, VIP: isVip}
}

// GetCourses lists published courses for the storefront.
func GetCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.
		Where("is_deleted = ? AND is_published = ?", false, true).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetCourseBySlug returns one course with its episodes plus the viewer's
// access decision. Anonymous viewers get the page too; canUse is just false.
func GetCourseBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var course models.Course
	if err := database.Database.Db.
		Where("slug = ? AND is_deleted = ? AND is_published = ?", slug, false, true).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var episodes []models.Episode
	if err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ? AND is_published = ?", course.ID, false, true).
		Order("number asc").
		Find(&episodes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch episodes!", nil)
	}

	canUse, err := coursePolicy().CanAccess(viewerFromCtx(c), access.Course{ID: course.ID, Type: course.Type})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check course access!", nil)
	}

	// Paid episode URLs stay out of the payload for viewers without access.
	if !canUse {
		for i := range episodes {
			if episodes[i].Type == models.CourseTypePaid {
				episodes[i].URL = ""
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":   course,
		"episodes": episodes,
		"canUse":   canUse,
	})
}

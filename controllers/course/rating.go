package controllers

import (
	"errors"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/services/access"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RateCourse records a user's 1-5 rating for a course and folds it into the
// course's running average score.
func RateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Eligibility: access first, then one-rating-per-user.
	var raterIDs []uint
	if err := database.Database.Db.Model(&models.Rating{}).
		Where("course_id = ?", course.ID).
		Pluck("user_id", &raterIDs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch ratings!", nil)
	}

	viewer := &access.Viewer{ID: user.ID, VIP: user.IsVip}
	eligible, err := coursePolicy().CanRate(viewer, access.Course{ID: course.ID, Type: course.Type}, raterIDs)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check rating eligibility!", nil)
	}
	if !eligible {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, access.ErrIneligibleRating.Error(), nil)
	}

	reqData, ok := c.Locals("validatedRating").(*courseValidator.RateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	newTotal := course.TotalRatings + 1
	newScore := (course.Score*float64(course.TotalRatings) + float64(reqData.Rating)) / float64(newTotal)

	tx := database.Database.Db.Begin()
	rating := models.Rating{
		UserID:   user.ID,
		CourseID: course.ID,
		Value:    reqData.Rating,
	}
	if err := tx.Create(&rating).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit rating!", nil)
	}
	if err := tx.Model(&models.Course{}).Where("id = ?", course.ID).
		Updates(map[string]interface{}{"score": newScore, "total_ratings": newTotal}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course score!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating submitted successfully!", fiber.Map{
		"score":        newScore,
		"totalRatings": newTotal,
	})
}

// ToggleCourseLike flips the viewer's like on a course and keeps the
// denormalized like counter in step with an atomic column expression.
func ToggleCourseLike(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	state := "liked"
	tx := database.Database.Db.Begin()

	var like models.CourseLike
	err := tx.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&like).Error
	switch {
	case err == nil:
		if err := tx.Delete(&like).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update like!", nil)
		}
		if err := tx.Model(&models.Course{}).Where("id = ?", course.ID).
			UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update like count!", nil)
		}
		state = "unliked"
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := tx.Create(&models.CourseLike{UserID: user.ID, CourseID: course.ID}).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update like!", nil)
		}
		if err := tx.Model(&models.Course{}).Where("id = ?", course.ID).
			UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update like count!", nil)
		}
	default:
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update like!", nil)
	}
	tx.Commit()

	var likeCount int64
	database.Database.Db.Model(&models.Course{}).Where("id = ?", course.ID).
		Select("like_count").Scan(&likeCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Like updated successfully!", fiber.Map{
		"state":     state,
		"likeCount": likeCount,
	})
}

package controllers

import (
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/services/coursetime"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// refreshCourseTime recomputes the owning course's total duration from its
// episodes. Called after every episode mutation.
func refreshCourseTime(db *gorm.DB, courseID uint) error {
	var times []string
	if err := db.Model(&models.Episode{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Pluck("time", &times).Error; err != nil {
		return err
	}
	return db.Model(&models.Course{}).Where("id = ?", courseID).
		Update("time", coursetime.Aggregate(times)).Error
}

// AdminCreateEpisode adds an episode and refreshes the course duration
func AdminCreateEpisode(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	reqData, ok := c.Locals("validatedEpisode").(*courseValidator.CreateEpisodeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if config.AppConfig.ProbeVideoURLs {
		if err := utils.ProbeVideoURL(reqData.URL); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video URL check failed: "+err.Error(), nil)
		}
	}

	published := true
	if reqData.IsPublished != nil {
		published = *reqData.IsPublished
	}

	episode := models.Episode{
		CourseID:    course.ID,
		Title:       reqData.Title,
		Number:      reqData.Number,
		Type:        reqData.Type,
		URL:         reqData.URL,
		Description: reqData.Description,
		Time:        reqData.Time,
		IsPublished: published,
	}

	if err := database.Database.Db.Create(&episode).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create episode!", nil)
	}

	if err := refreshCourseTime(database.Database.Db, course.ID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course duration!", nil)
	}

	if published {
		go utils.NotifyEnrolledUsers(course.ID, course.Title, episode.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Episode created successfully!", episode)
}

// AdminEditEpisode updates an episode and refreshes the course duration
func AdminEditEpisode(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	reqData, ok := c.Locals("validatedEpisodeEdit").(*courseValidator.EditEpisodeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Check the episode exists, then its course, matching the save path.
	var episode models.Episode
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.EpisodeID, false).First(&episode).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Episode not found!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", episode.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if reqData.URL != nil && config.AppConfig.ProbeVideoURLs {
		if err := utils.ProbeVideoURL(*reqData.URL); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video URL check failed: "+err.Error(), nil)
		}
	}

	updates := make(map[string]interface{})
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Number != nil {
		updates["number"] = *reqData.Number
	}
	if reqData.Type != nil {
		updates["type"] = *reqData.Type
	}
	if reqData.URL != nil {
		updates["url"] = *reqData.URL
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Time != nil {
		updates["time"] = *reqData.Time
	}
	if reqData.IsPublished != nil {
		updates["is_published"] = *reqData.IsPublished
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&episode).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update episode!", nil)
		}
	}

	if err := refreshCourseTime(database.Database.Db, course.ID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course duration!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Episode updated successfully!", episode)
}

// AdminDeleteEpisode soft-deletes an episode and refreshes the course duration
func AdminDeleteEpisode(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	episodeID := c.Locals("episodeID").(int)

	var episode models.Episode
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", episodeID, false).First(&episode).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Episode not found!", nil)
	}

	if err := database.Database.Db.Model(&episode).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete episode!", nil)
	}

	if err := refreshCourseTime(database.Database.Db, episode.CourseID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course duration!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Episode deleted successfully!", nil)
}

// AdminListEpisodes lists every non-deleted episode
func AdminListEpisodes(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	var episodes []models.Episode
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&episodes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch episodes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Episodes fetched successfully!", fiber.Map{
		"episodes": episodes,
	})
}

package controllers_test

import (
	"testing"

	"lms/database"
	"lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createEpisode(t *testing.T, courseID uint, title, episodeType, url, time string) models.Episode {
	t.Helper()
	episode := models.Episode{
		CourseID:    courseID,
		Title:       title,
		Type:        episodeType,
		URL:         url,
		Time:        time,
		IsPublished: true,
	}
	require.NoError(t, database.Database.Db.Create(&episode).Error)
	return episode
}

func TestGetCoursesListsOnlyPublished(t *testing.T) {
	app := setupApp(t)
	createCourse(t, "visible", models.CourseTypeFree)

	draft := models.Course{Title: "Draft", Slug: "draft", Type: models.CourseTypeFree, IsPublished: false}
	require.NoError(t, database.Database.Db.Create(&draft).Error)

	status, env := doJSON(t, app, "GET", "/courses/", "", nil)
	require.Equal(t, 200, status)

	courses := env.Data["courses"].([]interface{})
	require.Len(t, courses, 1)
	assert.Equal(t, "visible", courses[0].(map[string]interface{})["slug"])
}

func TestGetCourseBySlugAnonymousViewer(t *testing.T) {
	app := setupApp(t)
	course := createCourse(t, "paid-videos", models.CourseTypePaid)
	createEpisode(t, course.ID, "Teaser", "free", "https://videos.example.com/teaser.mp4", "02:00")
	createEpisode(t, course.ID, "Lesson", "paid", "https://videos.example.com/lesson.mp4", "20:00")

	status, env := doJSON(t, app, "GET", "/courses/paid-videos", "", nil)
	require.Equal(t, 200, status)
	assert.Equal(t, false, env.Data["canUse"])

	episodes := env.Data["episodes"].([]interface{})
	require.Len(t, episodes, 2)
	for _, raw := range episodes {
		episode := raw.(map[string]interface{})
		if episode["type"] == "paid" {
			assert.Empty(t, episode["url"], "paid episode url must be hidden from anonymous viewers")
		} else {
			assert.NotEmpty(t, episode["url"])
		}
	}
}

func TestGetCourseBySlugVipViewerOnPaidCourse(t *testing.T) {
	app := setupApp(t)
	course := createCourse(t, "vip-access", models.CourseTypePaid)
	createEpisode(t, course.ID, "Lesson", "paid", "https://videos.example.com/lesson.mp4", "20:00")
	vip := createUser(t, "ivy", "USER", true)

	status, env := doJSON(t, app, "GET", "/courses/vip-access", tokenFor(t, vip), nil)
	require.Equal(t, 200, status)
	assert.Equal(t, true, env.Data["canUse"])

	episodes := env.Data["episodes"].([]interface{})
	require.Len(t, episodes, 1)
	assert.NotEmpty(t, episodes[0].(map[string]interface{})["url"])
}

func TestGetCourseBySlugEnrolledViewer(t *testing.T) {
	app := setupApp(t)
	course := createCourse(t, "enrolled-access", models.CourseTypePaid)
	user := createUser(t, "judy", "USER", false)
	require.NoError(t, database.Database.Db.Create(&models.Enrollment{
		UserID:   user.ID,
		CourseID: course.ID,
		Status:   "ACTIVE",
	}).Error)

	status, env := doJSON(t, app, "GET", "/courses/enrolled-access", tokenFor(t, user), nil)
	require.Equal(t, 200, status)
	assert.Equal(t, true, env.Data["canUse"])
}

func TestGetCourseBySlugUnknown(t *testing.T) {
	app := setupApp(t)

	status, _ := doJSON(t, app, "GET", "/courses/never-made", "", nil)
	assert.Equal(t, 404, status)
}

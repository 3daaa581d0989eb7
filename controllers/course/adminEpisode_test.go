package controllers_test

import (
	"fmt"
	"testing"

	"lms/database"
	"lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminEpisodeFlowKeepsCourseTimeCurrent(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, "admin", "ADMIN", false)
	course := createCourse(t, "durations", models.CourseTypeFree)
	token := tokenFor(t, admin)

	status, env := doJSON(t, app, "POST", "/admin/episodes", token, map[string]interface{}{
		"courseId": course.ID,
		"title":    "Introduction",
		"number":   1,
		"url":      "https://videos.example.com/intro.mp4",
		"time":     "10:00",
	})
	require.Equal(t, 200, status, env.Message)
	assert.Equal(t, "00:10:00", courseByID(t, course.ID).Time)

	status, env = doJSON(t, app, "POST", "/admin/episodes", token, map[string]interface{}{
		"courseId": course.ID,
		"title":    "Setup",
		"number":   2,
		"url":      "https://videos.example.com/setup.mp4",
		"time":     "20:00",
	})
	require.Equal(t, 200, status, env.Message)
	assert.Equal(t, "00:30:00", courseByID(t, course.ID).Time)

	episodeID := uint(env.Data["ID"].(float64))

	// hour-long episodes go through the three-field branch: 3601s + 600s
	status, env = doJSON(t, app, "PUT", "/admin/episodes", token, map[string]interface{}{
		"episodeId": episodeID,
		"time":      "01:00:00",
	})
	require.Equal(t, 200, status, env.Message)
	assert.Equal(t, "01:10:01", courseByID(t, course.ID).Time)

	status, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/admin/episodes/%d", episodeID), token, nil)
	require.Equal(t, 200, status)
	assert.Equal(t, "00:10:00", courseByID(t, course.ID).Time)
}

func TestAdminEpisodeRejectsBadDurationShape(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, "admin", "ADMIN", false)
	course := createCourse(t, "strict-times", models.CourseTypeFree)

	status, _ := doJSON(t, app, "POST", "/admin/episodes", tokenFor(t, admin), map[string]interface{}{
		"courseId": course.ID,
		"title":    "Broken",
		"url":      "https://videos.example.com/broken.mp4",
		"time":     "1:2:3:4",
	})
	assert.Equal(t, 422, status)
}

func TestAdminEpisodeRequiresAdminRole(t *testing.T) {
	app := setupApp(t)
	user := createUser(t, "plain", "USER", false)
	course := createCourse(t, "locked", models.CourseTypeFree)

	status, _ := doJSON(t, app, "POST", "/admin/episodes", tokenFor(t, user), map[string]interface{}{
		"courseId": course.ID,
		"title":    "Nope",
		"url":      "https://videos.example.com/nope.mp4",
		"time":     "05:00",
	})
	assert.Equal(t, 403, status)

	var count int64
	database.Database.Db.Model(&models.Episode{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAdminEpisodeMissingCourse(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, "admin", "ADMIN", false)

	status, _ := doJSON(t, app, "POST", "/admin/episodes", tokenFor(t, admin), map[string]interface{}{
		"courseId": 4242,
		"title":    "Orphan",
		"url":      "https://videos.example.com/orphan.mp4",
		"time":     "05:00",
	})
	assert.Equal(t, 404, status)
}

package controllers_test

import (
	"fmt"
	"testing"

	"lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminCreateCourseSlugHandling(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, "admin", "ADMIN", false)
	token := tokenFor(t, admin)

	status, env := doJSON(t, app, "POST", "/admin/courses", token, map[string]interface{}{
		"title": "Advanced Go",
		"slug":  "Advanced Go!",
		"type":  "paid",
		"price": 120,
		"tags":  []string{"go", "backend"},
	})
	require.Equal(t, 200, status, env.Message)
	assert.Equal(t, "advanced-go", env.Data["slug"])

	// same slug again gets a disambiguating suffix instead of failing
	status, env = doJSON(t, app, "POST", "/admin/courses", token, map[string]interface{}{
		"title": "Advanced Go, second edition",
		"slug":  "advanced-go",
		"type":  "free",
	})
	require.Equal(t, 200, status, env.Message)
	slug := env.Data["slug"].(string)
	assert.NotEqual(t, "advanced-go", slug)
	assert.Contains(t, slug, "advanced-go-")
}

func TestAdminCreateCourseValidation(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, "admin", "ADMIN", false)
	token := tokenFor(t, admin)

	// bad type
	status, _ := doJSON(t, app, "POST", "/admin/courses", token, map[string]interface{}{
		"title": "Bad Type",
		"slug":  "bad-type",
		"type":  "premium",
	})
	assert.Equal(t, 422, status)

	// price on a non-paid course
	status, _ = doJSON(t, app, "POST", "/admin/courses", token, map[string]interface{}{
		"title": "Priced Free",
		"slug":  "priced-free",
		"type":  "free",
		"price": 10,
	})
	assert.Equal(t, 422, status)
}

func TestAdminEditAndDeleteCourse(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, "admin", "ADMIN", false)
	course := createCourse(t, "editable", models.CourseTypeFree)
	token := tokenFor(t, admin)

	status, _ := doJSON(t, app, "PUT", "/admin/courses", token, map[string]interface{}{
		"courseId": course.ID,
		"title":    "Renamed",
		"type":     "vip",
	})
	require.Equal(t, 200, status)

	got := courseByID(t, course.ID)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, models.CourseTypeVip, got.Type)
	assert.Equal(t, "editable", got.Slug, "slug is immutable")

	status, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/admin/courses/%d", course.ID), token, nil)
	require.Equal(t, 200, status)
	assert.True(t, courseByID(t, course.ID).IsDeleted)

	// deleted courses disappear from the storefront
	status, _ = doJSON(t, app, "GET", "/courses/editable", "", nil)
	assert.Equal(t, 404, status)
}

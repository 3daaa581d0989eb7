package utils

import (
	"fmt"
	"log"

	"lms/config"
	"lms/database"
	"lms/models"
	"lms/services/coursetime"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializeReconcileScheduler starts the nightly reconciliation job.
// Durations and scores are maintained synchronously on every write; the job
// repairs drift left behind by crashed requests.
func InitializeReconcileScheduler() {
	log.Println("[RECONCILE-SCHEDULER] Initializing reconciliation scheduler...")

	c := cron.New()

	// Run daily at 03:30
	c.AddFunc("30 3 * * *", func() {
		log.Println("[RECONCILE-SCHEDULER] Running daily reconciliation...")
		ReconcileCourseTimes()
		ReconcileCourseScores()
		SendDailyRatingsDigest()
	})

	c.Start()
	log.Println("[RECONCILE-SCHEDULER] Reconciliation scheduler started - runs daily at 03:30")
}

// ReconcileCourseTimes recomputes every course's total duration from its
// episodes and rewrites the stored value when it has drifted.
func ReconcileCourseTimes() {
	db := database.Database.Db

	var courses []models.Course
	if err := db.Where("is_deleted = ?", false).Find(&courses).Error; err != nil {
		log.Printf("[RECONCILE-SCHEDULER] Error fetching courses: %v", err)
		return
	}

	fixed := 0
	for _, course := range courses {
		var times []string
		if err := db.Model(&models.Episode{}).
			Where("course_id = ? AND is_deleted = ?", course.ID, false).
			Pluck("time", &times).Error; err != nil {
			log.Printf("[RECONCILE-SCHEDULER] Error fetching episode times for course %d: %v", course.ID, err)
			continue
		}

		total := coursetime.Aggregate(times)
		if total == course.Time {
			continue
		}
		if err := db.Model(&models.Course{}).Where("id = ?", course.ID).Update("time", total).Error; err != nil {
			log.Printf("[RECONCILE-SCHEDULER] Error updating time for course %d: %v", course.ID, err)
			continue
		}
		fixed++
	}

	log.Printf("[RECONCILE-SCHEDULER] Course time reconciliation done, %d course(s) corrected", fixed)
}

// ReconcileCourseScores recomputes score and total from the ratings table.
func ReconcileCourseScores() {
	db := database.Database.Db

	var courses []models.Course
	if err := db.Where("is_deleted = ?", false).Find(&courses).Error; err != nil {
		log.Printf("[RECONCILE-SCHEDULER] Error fetching courses: %v", err)
		return
	}

	fixed := 0
	for _, course := range courses {
		var agg struct {
			Total int64
			Score float64
		}
		if err := db.Model(&models.Rating{}).
			Select("COUNT(*) as total, COALESCE(AVG(value), 0) as score").
			Where("course_id = ?", course.ID).
			Scan(&agg).Error; err != nil {
			log.Printf("[RECONCILE-SCHEDULER] Error aggregating ratings for course %d: %v", course.ID, err)
			continue
		}

		if agg.Total == course.TotalRatings && agg.Score == course.Score {
			continue
		}
		if err := db.Model(&models.Course{}).Where("id = ?", course.ID).
			Updates(map[string]interface{}{"score": agg.Score, "total_ratings": agg.Total}).Error; err != nil {
			log.Printf("[RECONCILE-SCHEDULER] Error updating score for course %d: %v", course.ID, err)
			continue
		}
		fixed++
	}

	log.Printf("[RECONCILE-SCHEDULER] Course score reconciliation done, %d course(s) corrected", fixed)
}

// SendDailyRatingsDigest mails the admin a summary of ratings submitted
// since the beginning of the day.
func SendDailyRatingsDigest() {
	if config.AppConfig.AdminEmail == "" {
		return
	}

	db := database.Database.Db

	var ratings []models.Rating
	if err := db.Where("created_at >= ?", now.BeginningOfDay()).Find(&ratings).Error; err != nil {
		log.Printf("[RECONCILE-SCHEDULER] Error fetching today's ratings: %v", err)
		return
	}
	if len(ratings) == 0 {
		return
	}

	lines := make([]string, 0, len(ratings))
	for _, rating := range ratings {
		var course models.Course
		if err := db.Select("title").Where("id = ?", rating.CourseID).First(&course).Error; err != nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %d/5 from user %d", course.Title, rating.Value, rating.UserID))
	}

	SendRatingsDigestEmail(config.AppConfig.AdminEmail, lines)
	log.Printf("[RECONCILE-SCHEDULER] Sent ratings digest with %d entries", len(lines))
}

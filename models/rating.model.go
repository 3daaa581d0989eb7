package models

import "gorm.io/gorm"

// Rating is one user's score for a course. The composite unique index
// enforces the one-rating-per-user-per-course invariant at the store level.
type Rating struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"not null;uniqueIndex:idx_rating_user_course"`
	CourseID uint `json:"course_id" gorm:"not null;uniqueIndex:idx_rating_user_course"`
	Value    int  `json:"value" gorm:"not null;check:value >= 1 AND value <= 5"`
}

package models

import "time"

// CourseLike records that a user has liked a course. Likes are rows rather
// than an id array on the user so membership checks and the like counter can
// stay atomic on the database side. No soft delete: unliking removes the row
// outright, otherwise the unique pair index would block a later re-like.
type CourseLike struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UserID    uint `json:"user_id" gorm:"not null;uniqueIndex:idx_like_user_course"`
	CourseID  uint `json:"course_id" gorm:"not null;uniqueIndex:idx_like_user_course"`
}

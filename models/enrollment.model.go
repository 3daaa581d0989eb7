package models

import "gorm.io/gorm"

// Enrollment records that a user has activated a paid course. Purchase and
// activation flows live outside this service; the row is what the access
// policy consults.
type Enrollment struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Status    string `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, EXPIRED, REVOKED
	IsDeleted bool   `gorm:"default:false"`
}

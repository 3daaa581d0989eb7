package models

import "gorm.io/gorm"

// Episode is a timed sub-unit of a course. Time is "MM:SS" or "HH:MM:SS";
// the course's total is recomputed from episode times on every change.
type Episode struct {
	gorm.Model
	CourseID      uint   `json:"course_id" gorm:"index;not null"`
	Title         string `json:"title" gorm:"not null"`
	Number        int    `json:"number" gorm:"default:0"`
	Type          string `json:"type" gorm:"default:'free'"` // free, paid
	URL           string `json:"url" gorm:"not null"`
	Description   string `json:"description" gorm:"type:text"`
	Time          string `json:"time" gorm:"default:'00:00:00'"`
	ViewCount     int64  `json:"view_count" gorm:"default:0"`
	CommentCount  int64  `json:"comment_count" gorm:"default:0"`
	DownloadCount int64  `json:"download_count" gorm:"default:0"`
	IsPublished   bool   `json:"is_published"`
	IsDeleted     bool   `gorm:"default:false"`
}

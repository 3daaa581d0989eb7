package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course types. Exactly one applies to a course at any time.
const (
	CourseTypeFree = "free"
	CourseTypePaid = "paid"
	CourseTypeVip  = "vip"
)

// Course represents a sellable course
type Course struct {
	gorm.Model
	Title        string         `json:"title" gorm:"not null"`
	Slug         string         `json:"slug" gorm:"uniqueIndex;not null"`
	Description  string         `json:"description" gorm:"type:text"`
	Type         string         `json:"type" gorm:"default:'free'"` // free, paid, vip
	Price        uint           `json:"price" gorm:"default:0"`
	Tags         datatypes.JSON `json:"tags"`
	ThumbnailURL string         `json:"thumbnail_url"`
	AuthorID     uint           `json:"author_id" gorm:"index"`
	Time         string         `json:"time" gorm:"default:'00:00:00'"` // aggregated episode duration, HH:MM:SS
	Score        float64        `json:"score" gorm:"default:0"`
	TotalRatings int64          `json:"total_ratings" gorm:"default:0"`
	LikeCount    int64          `json:"like_count" gorm:"default:0"`
	IsPublished  bool           `json:"is_published" gorm:"default:false"`
	IsDeleted    bool           `gorm:"default:false"`
}

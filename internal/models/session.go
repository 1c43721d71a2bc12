package models

import (
	"time"

	"gorm.io/gorm"
)

// AnnotationSession tracks one working period of one user. Purely a
// grouping key for history rows plus activity bookkeeping; there is no
// enforced state machine beyond the optional EndTime.
type AnnotationSession struct {
	gorm.Model
	SessionID        string     `json:"session_id" gorm:"uniqueIndex;not null"`
	UserID           string     `json:"user_id" gorm:"not null;index"`
	Username         string     `json:"username" gorm:"not null"`
	StartTime        time.Time  `json:"start_time" gorm:"not null"`
	LastActivity     time.Time  `json:"last_activity" gorm:"not null"`
	EndTime          *time.Time `json:"end_time,omitempty"`
	TextsAnnotated   int        `json:"texts_annotated" gorm:"default:0"`
	TotalAnnotations int        `json:"total_annotations" gorm:"default:0"`
}

// TableName returns the table name for the AnnotationSession model
func (AnnotationSession) TableName() string {
	return "annotation_sessions"
}

// UserStats is the aggregation row returned by the statistics query,
// mirroring the warehouse GROUP BY over active annotations.
type UserStats struct {
	UserID           string     `json:"user_id"`
	Username         string     `json:"username"`
	TotalAnnotations int        `json:"total_annotations"`
	TextsAnnotated   int        `json:"texts_annotated"`
	FirstAnnotation  *time.Time `json:"first_annotation,omitempty"`
	LastAnnotation   *time.Time `json:"last_annotation,omitempty"`
}

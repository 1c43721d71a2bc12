package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/killallgit/annotator-api/internal/annotator"
)

// Annotation is the persisted form of one labeled entity span. Rows are
// soft-deleted via IsActive so history queries can still see them; the
// active snapshot for a text is the set of rows with IsActive true.
type Annotation struct {
	gorm.Model
	AnnotationID string    `json:"id" gorm:"uniqueIndex;not null"`
	TextID       string    `json:"text_id" gorm:"not null;index"`
	EntityText   string    `json:"text" gorm:"not null"`
	EntityLabel  string    `json:"label" gorm:"not null"`
	StartPos     int       `json:"start" gorm:"not null"`
	EndPos       int       `json:"end" gorm:"not null"`
	Confidence   float64   `json:"confidence" gorm:"default:1.0"`
	UserID       string    `json:"user_id" gorm:"not null;index"`
	Username     string    `json:"username" gorm:"not null"`
	AnnotatedAt  time.Time `json:"timestamp"`
	SessionID    string    `json:"session_id,omitempty"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true;index"`
}

// BeforeCreate generates an annotation id before inserting a new row
func (a *Annotation) BeforeCreate(tx *gorm.DB) error {
	if a.AnnotationID == "" {
		a.AnnotationID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Annotation model
func (Annotation) TableName() string {
	return "annotations"
}

// ToEntity converts the row to the core interchange shape.
func (a *Annotation) ToEntity() annotator.Entity {
	return annotator.Entity{
		ID:         a.AnnotationID,
		Text:       a.EntityText,
		Label:      a.EntityLabel,
		Start:      a.StartPos,
		End:        a.EndPos,
		Confidence: a.Confidence,
		UserID:     a.UserID,
		Username:   a.Username,
		CreatedAt:  a.AnnotatedAt,
	}
}

// AnnotationFromEntity builds a row from the core interchange shape.
func AnnotationFromEntity(textID, sessionID string, e annotator.Entity) Annotation {
	return Annotation{
		AnnotationID: e.ID,
		TextID:       textID,
		EntityText:   e.Text,
		EntityLabel:  e.Label,
		StartPos:     e.Start,
		EndPos:       e.End,
		Confidence:   e.Confidence,
		UserID:       e.UserID,
		Username:     e.Username,
		AnnotatedAt:  e.CreatedAt,
		SessionID:    sessionID,
		IsActive:     true,
	}
}

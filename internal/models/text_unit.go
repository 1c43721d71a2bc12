package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TextUnit status values. Units move pending -> in_progress when first
// opened and in_progress -> completed when a save finalizes annotations.
const (
	TextStatusPending    = "pending"
	TextStatusInProgress = "in_progress"
	TextStatusCompleted  = "completed"
)

// TextUnit is one immutable document or passage eligible for annotation.
// Source and Priority are descriptive metadata; priority only influences
// queue ordering.
type TextUnit struct {
	gorm.Model
	TextID     string `json:"text_id" gorm:"uniqueIndex;not null"`
	Content    string `json:"content" gorm:"not null"`
	Source     string `json:"source"`
	Priority   int    `json:"priority" gorm:"default:0;index"`
	Status     string `json:"status" gorm:"not null;default:pending;index"`
	AssignedTo string `json:"assigned_to,omitempty" gorm:"index"`
}

// BeforeCreate generates a text id before inserting a new unit
func (t *TextUnit) BeforeCreate(tx *gorm.DB) error {
	if t.TextID == "" {
		t.TextID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = TextStatusPending
	}
	return nil
}

// TableName returns the table name for the TextUnit model
func (TextUnit) TableName() string {
	return "texts"
}

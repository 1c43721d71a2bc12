package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/killallgit/annotator-api/internal/annotator"
)

// AnnotationHistory is one persisted audit record. EntityData carries
// the full entity payload as JSON at the time of the action; it is
// written once and never updated.
type AnnotationHistory struct {
	gorm.Model
	HistoryID    string    `json:"id" gorm:"uniqueIndex;not null"`
	AnnotationID string    `json:"annotation_id" gorm:"index"`
	TextID       string    `json:"text_id" gorm:"not null;index"`
	Action       string    `json:"action" gorm:"not null"`
	EntityData   string    `json:"entity_data" gorm:"not null"`
	UserID       string    `json:"user_id" gorm:"not null;index"`
	Username     string    `json:"username" gorm:"not null"`
	SessionID    string    `json:"session_id,omitempty" gorm:"index"`
	Timestamp    time.Time `json:"timestamp" gorm:"not null;index"`
}

// BeforeCreate generates a history id before inserting a new row
func (h *AnnotationHistory) BeforeCreate(tx *gorm.DB) error {
	if h.HistoryID == "" {
		h.HistoryID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the AnnotationHistory model
func (AnnotationHistory) TableName() string {
	return "annotation_history"
}

// HistoryFromEntry builds a row from a core ledger entry.
func HistoryFromEntry(entry annotator.HistoryEntry) (AnnotationHistory, error) {
	payload, err := json.Marshal(entry.Entity)
	if err != nil {
		return AnnotationHistory{}, err
	}
	return AnnotationHistory{
		HistoryID:    entry.ID,
		AnnotationID: entry.Entity.ID,
		TextID:       entry.TextID,
		Action:       string(entry.Action),
		EntityData:   string(payload),
		UserID:       entry.UserID,
		Username:     entry.Username,
		SessionID:    entry.SessionID,
		Timestamp:    entry.Timestamp,
	}, nil
}

// ToEntry converts the row back to a core ledger entry.
func (h *AnnotationHistory) ToEntry() (annotator.HistoryEntry, error) {
	var entity annotator.Entity
	if err := json.Unmarshal([]byte(h.EntityData), &entity); err != nil {
		return annotator.HistoryEntry{}, err
	}
	return annotator.HistoryEntry{
		ID:        h.HistoryID,
		TextID:    h.TextID,
		Action:    annotator.Action(h.Action),
		Entity:    entity,
		UserID:    h.UserID,
		Username:  h.Username,
		SessionID: h.SessionID,
		Timestamp: h.Timestamp,
	}, nil
}

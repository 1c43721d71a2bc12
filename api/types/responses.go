package types

import (
	"time"

	"github.com/killallgit/annotator-api/internal/annotator"
	"github.com/killallgit/annotator-api/internal/models"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// TextsResponse for text unit lists
type TextsResponse struct {
	BaseResponse
	Texts []models.TextUnit `json:"texts"`
	Count int               `json:"count"`
}

// SingleTextResponse for one text unit with its active entities
type SingleTextResponse struct {
	BaseResponse
	Text     *models.TextUnit   `json:"text"`
	Entities []annotator.Entity `json:"entities"`
}

// AnnotationResponse for a created or removed entity
type AnnotationResponse struct {
	BaseResponse
	Entity annotator.Entity `json:"entity"`
}

// BulkUploadResponse reports how many units were loaded
type BulkUploadResponse struct {
	BaseResponse
	Created int `json:"created"`
}

// SaveResponse reports a persisted snapshot
type SaveResponse struct {
	BaseResponse
	TextID     string `json:"text_id"`
	Entities   int    `json:"entities_saved"`
	HistoryLog int    `json:"history_entries"`
}

// HistoryResponse for audit trail queries
type HistoryResponse struct {
	BaseResponse
	Entries []annotator.HistoryEntry `json:"history"`
	Count   int                      `json:"count"`
}

// SessionStatsResponse for live in-session activity
type SessionStatsResponse struct {
	BaseResponse
	Users []annotator.UserActivity `json:"users"`
}

// UserStatsResponse for persisted per-user aggregates
type UserStatsResponse struct {
	BaseResponse
	Users []models.UserStats `json:"users"`
}

// SessionResponse for session lifecycle endpoints
type SessionResponse struct {
	BaseResponse
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	StartedAt time.Time `json:"started_at"`
	OpenTexts []string  `json:"open_texts,omitempty"`
}

// LabelsResponse lists the configured entity label types
type LabelsResponse struct {
	BaseResponse
	Labels []string `json:"labels"`
}

package types

// StartSessionRequest opens a working session for a user
type StartSessionRequest struct {
	UserID   string `json:"user_id"`
	Username string `json:"username" binding:"required"`
}

// OpenTextRequest attaches a text unit to a session
type OpenTextRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// AddAnnotationRequest creates one entity on a text unit
type AddAnnotationRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Label     string `json:"label" binding:"required"`
}

// RemoveAnnotationRequest deletes one entity from a text unit
type RemoveAnnotationRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	TextID    string `json:"text_id" binding:"required"`
}

// SaveRequest persists a session's annotations for one text unit
type SaveRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// BulkUploadRequest loads new text units for annotation
type BulkUploadRequest struct {
	Texts []IncomingTextUnit `json:"texts" binding:"required"`
}

// IncomingTextUnit is one unit in a bulk upload
type IncomingTextUnit struct {
	TextID   string `json:"text_id"`
	Content  string `json:"content"`
	Source   string `json:"source"`
	Priority int    `json:"priority"`
}

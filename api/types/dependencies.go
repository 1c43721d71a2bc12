package types

import (
	"github.com/killallgit/annotator-api/internal/annotator"
	"github.com/killallgit/annotator-api/internal/database"
	"github.com/killallgit/annotator-api/internal/services/annotations"
	"github.com/killallgit/annotator-api/internal/services/texts"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	TextService       texts.Service
	AnnotationService annotations.Service
	SessionManager    *annotator.Manager
	Labels            []string
	HistoryLimit      int
}

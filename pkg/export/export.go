// Package export renders annotation state as training-ready JSON
// documents.
package export

import (
	"encoding/json"
	"time"

	"github.com/killallgit/annotator-api/internal/annotator"
)

// Document is the export format for one annotated text: the content,
// its current entities, the full audit trail, and summary counts.
type Document struct {
	TextID     string                    `json:"text_id"`
	Text       string                    `json:"text"`
	Entities   []annotator.Entity        `json:"entities"`
	History    []annotator.HistoryEntry  `json:"annotation_history"`
	Totals     Totals                    `json:"totals"`
	ExportedAt time.Time                 `json:"exported_at"`
}

// Totals summarizes the document for quick inspection.
type Totals struct {
	Entities     int            `json:"total_entities"`
	Actions      int            `json:"total_actions"`
	LabelCounts  map[string]int `json:"label_counts"`
	Contributors []string       `json:"contributors"`
}

// Build assembles a Document from store contents and its audit trail.
// History is expected oldest-first; entities in display order.
func Build(textID, text string, entities []annotator.Entity, history []annotator.HistoryEntry) Document {
	labels := make(map[string]int)
	for _, e := range entities {
		labels[e.Label]++
	}

	seen := make(map[string]bool)
	var contributors []string
	for _, entry := range history {
		if !seen[entry.UserID] {
			seen[entry.UserID] = true
			contributors = append(contributors, entry.Username)
		}
	}

	if entities == nil {
		entities = []annotator.Entity{}
	}
	if history == nil {
		history = []annotator.HistoryEntry{}
	}

	return Document{
		TextID:   textID,
		Text:     text,
		Entities: entities,
		History:  history,
		Totals: Totals{
			Entities:     len(entities),
			Actions:      len(history),
			LabelCounts:  labels,
			Contributors: contributors,
		},
		ExportedAt: time.Now().UTC(),
	}
}

// Marshal renders the document as indented JSON.
func Marshal(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

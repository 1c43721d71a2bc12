package importer

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/internal/services/texts"
)

// IncomingText is the file format for one unit in a bulk import drop.
type IncomingText struct {
	TextID   string `json:"text_id,omitempty"`
	Content  string `json:"content"`
	Source   string `json:"source,omitempty"`
	Priority int    `json:"priority,omitempty"`
}

// Importer watches a drop directory for JSON files and loads their
// texts as pending units. Each file holds a JSON array of IncomingText
// records and is deleted after a successful import.
type Importer struct {
	watcher  *fsnotify.Watcher
	texts    texts.Service
	watchDir string
}

// New creates an importer for the given drop directory, creating the
// directory if needed.
func New(textService texts.Service, watchDir string) (*Importer, error) {
	if err := os.MkdirAll(watchDir, 0755); err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Importer{
		watcher:  watcher,
		texts:    textService,
		watchDir: watchDir,
	}, nil
}

// Run processes files already present in the drop directory, then
// watches for new ones until the context is cancelled.
func (i *Importer) Run(ctx context.Context) error {
	if err := i.watcher.Add(i.watchDir); err != nil {
		return err
	}

	// Pick up files dropped before the watcher started.
	existing, err := filepath.Glob(filepath.Join(i.watchDir, "*.json"))
	if err == nil {
		for _, path := range existing {
			i.importFile(ctx, path)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-i.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if filepath.Ext(event.Name) != ".json" {
				continue
			}
			i.importFile(ctx, event.Name)
		case err, ok := <-i.watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("importer: watch error: %v", err)
		}
	}
}

// Stop closes the underlying watcher.
func (i *Importer) Stop() error {
	return i.watcher.Close()
}

// ImportFile loads one drop file and removes it on success. Exposed for
// the seed command's --file mode, which imports a single file without
// watching.
func (i *Importer) ImportFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var incoming []IncomingText
	if err := json.Unmarshal(data, &incoming); err != nil {
		return 0, err
	}

	units := make([]models.TextUnit, 0, len(incoming))
	for _, in := range incoming {
		units = append(units, models.TextUnit{
			TextID:   in.TextID,
			Content:  in.Content,
			Source:   in.Source,
			Priority: in.Priority,
		})
	}

	count, err := i.texts.BulkUpload(ctx, units)
	if err != nil {
		return 0, err
	}

	if err := os.Remove(path); err != nil {
		log.Printf("importer: could not remove %s after import: %v", path, err)
	}
	return count, nil
}

func (i *Importer) importFile(ctx context.Context, path string) {
	count, err := i.ImportFile(ctx, path)
	if err != nil {
		log.Printf("importer: skipping %s: %v", path, err)
		return
	}
	log.Printf("importer: loaded %d text(s) from %s", count, filepath.Base(path))
}

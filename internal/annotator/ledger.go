package annotator

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Ledger is the append-only audit log for a working session. It collects
// records from every entity store in the session, regardless of which
// text unit they belong to. Entries are never mutated or removed.
//
// Appends are mutex-guarded so stores driven from different goroutines
// still produce a single linear history.
type Ledger struct {
	mu      sync.Mutex
	entries []HistoryEntry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Record appends one entry for an add or remove action. The entity is
// stored by value so later mutations of the active set cannot reach it.
func (l *Ledger) Record(action Action, textID string, entity Entity, author User, sessionID string) HistoryEntry {
	entry := HistoryEntry{
		ID:        uuid.New().String(),
		TextID:    textID,
		Action:    action,
		Entity:    entity,
		UserID:    author.ID,
		Username:  author.Name,
		SessionID: sessionID,
		Timestamp: time.Now().UTC(),
	}

	l.mu.Lock()
	l.entries = append(l.entries, entry)
	l.mu.Unlock()

	return entry
}

// History returns entries newest-first, optionally filtered by text id
// and user id. A positive Limit truncates the result, matching the
// display convention of showing the most recent actions.
func (l *Ledger) History(filter HistoryFilter) []HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]HistoryEntry, 0, len(l.entries))
	for i := len(l.entries) - 1; i >= 0; i-- {
		entry := l.entries[i]
		if filter.TextID != "" && entry.TextID != filter.TextID {
			continue
		}
		if filter.UserID != "" && entry.UserID != filter.UserID {
			continue
		}
		out = append(out, entry)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out
}

// Len returns the number of recorded entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Entries returns all entries oldest-first, as a copy. Replaying adds
// minus subsequently removed ids reconstructs any store's active set.
func (l *Ledger) Entries() []HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]HistoryEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Statistics aggregates actions per user: total actions, adds, removes,
// distinct texts touched, and first/last action timestamps. Removals
// count as actions, so these totals deliberately diverge from live
// entity counts once anything has been removed.
//
// Ordering is total actions descending; users with equal totals keep
// their first-seen order in the ledger, which makes the "most active
// user" deterministic.
func (l *Ledger) Statistics() []UserActivity {
	l.mu.Lock()
	defer l.mu.Unlock()

	byUser := make(map[string]*UserActivity)
	texts := make(map[string]map[string]struct{})
	order := make([]string, 0)

	for _, entry := range l.entries {
		activity, ok := byUser[entry.UserID]
		if !ok {
			activity = &UserActivity{
				UserID:      entry.UserID,
				Username:    entry.Username,
				FirstAction: entry.Timestamp,
			}
			byUser[entry.UserID] = activity
			texts[entry.UserID] = make(map[string]struct{})
			order = append(order, entry.UserID)
		}

		activity.TotalActions++
		switch entry.Action {
		case ActionAdd:
			activity.Adds++
		case ActionRemove:
			activity.Removes++
		}
		activity.LastAction = entry.Timestamp
		texts[entry.UserID][entry.TextID] = struct{}{}
	}

	out := make([]UserActivity, 0, len(order))
	for _, userID := range order {
		activity := *byUser[userID]
		activity.TextsTouched = len(texts[userID])
		out = append(out, activity)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalActions > out[j].TotalActions
	})
	return out
}

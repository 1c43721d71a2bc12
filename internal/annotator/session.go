package annotator

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/killallgit/annotator-api/pkg/errors"
)

// Session is the explicit context object for one working period of one
// user. It owns the ledger and one entity store per opened text unit,
// and routes every add/remove through both so the audit trail stays in
// lockstep with the active sets.
//
// Sessions are safe for concurrent use. Handlers for the same session
// id can run in parallel, so the store map is mutex-guarded here and
// each store and the ledger guard their own state.
type Session struct {
	id        string
	user      User
	ledger    *Ledger
	startedAt time.Time

	mu     sync.RWMutex
	stores map[string]*EntityStore
}

// NewSession starts a session for the given user. The username must be
// set up front; this is a precondition for every mutation, not just a
// UI nicety.
func NewSession(user User) (*Session, error) {
	if user.Name == "" {
		return nil, errors.MissingFieldError("username")
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return &Session{
		id:        uuid.New().String(),
		user:      user,
		ledger:    NewLedger(),
		stores:    make(map[string]*EntityStore),
		startedAt: time.Now().UTC(),
	}, nil
}

// ID returns the session id used to group history entries.
func (s *Session) ID() string {
	return s.id
}

// User returns the session's annotator.
func (s *Session) User() User {
	return s.user
}

// StartedAt returns when the session was created.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// Ledger exposes the session's audit log.
func (s *Session) Ledger() *Ledger {
	return s.ledger
}

// Open creates (or returns) the entity store for a text unit, seeding it
// with existing entities loaded from persistence.
func (s *Session) Open(textID, content string, existing []Entity) *EntityStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	if store, ok := s.stores[textID]; ok {
		return store
	}
	store := NewEntityStore(textID, content, existing)
	s.stores[textID] = store
	return store
}

// Store returns the entity store for an opened text unit.
func (s *Session) Store(textID string) (*EntityStore, error) {
	s.mu.RLock()
	store, ok := s.stores[textID]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.NotFound("text", textID)
	}
	return store, nil
}

// OpenTextIDs lists the text units opened in this session.
func (s *Session) OpenTextIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.stores))
	for id := range s.stores {
		ids = append(ids, id)
	}
	return ids
}

// Add creates an entity in the text unit's store and records the action.
// The ledger entry carries a value copy of the created entity.
func (s *Session) Add(textID string, span Span, label string) (Entity, error) {
	store, err := s.Store(textID)
	if err != nil {
		return Entity{}, err
	}
	entity, err := store.Add(span, label, s.user)
	if err != nil {
		return Entity{}, err
	}
	s.ledger.Record(ActionAdd, textID, entity, s.user, s.id)
	return entity, nil
}

// Remove deletes an entity from the text unit's store and records the
// action. On failure nothing is recorded.
func (s *Session) Remove(textID, entityID string) (Entity, error) {
	store, err := s.Store(textID)
	if err != nil {
		return Entity{}, err
	}
	entity, err := store.Remove(entityID, s.user)
	if err != nil {
		return Entity{}, err
	}
	s.ledger.Record(ActionRemove, textID, entity, s.user, s.id)
	return entity, nil
}

// History queries the session ledger newest-first.
func (s *Session) History(filter HistoryFilter) []HistoryEntry {
	return s.ledger.History(filter)
}

// Statistics aggregates the session ledger per user.
func (s *Session) Statistics() []UserActivity {
	return s.ledger.Statistics()
}

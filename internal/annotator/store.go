package annotator

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/killallgit/annotator-api/pkg/errors"
)

// EntityStore owns the set of active entities for exactly one text unit.
// Every mutation is gated through validation; overlapping and duplicate
// spans are accepted on purpose, matching the labeling tool's observed
// behavior.
//
// The store is safe for concurrent use: HTTP handlers dispatch on
// separate goroutines, and several of them may hit the same session's
// stores at once.
type EntityStore struct {
	textID  string
	content []rune

	mu     sync.RWMutex
	active []Entity // insertion order
	index  map[string]int
}

// NewEntityStore creates a store for one text unit. Existing entities,
// typically loaded from persistence in start-ascending order, seed the
// active set as-is.
func NewEntityStore(textID, content string, existing []Entity) *EntityStore {
	s := &EntityStore{
		textID:  textID,
		content: []rune(content),
		index:   make(map[string]int),
	}
	for _, e := range existing {
		s.index[e.ID] = len(s.active)
		s.active = append(s.active, e)
	}
	return s
}

// TextID returns the id of the text unit this store belongs to.
func (s *EntityStore) TextID() string {
	return s.textID
}

// Content returns the text unit's content.
func (s *EntityStore) Content() string {
	return string(s.content)
}

// ContentLength returns the content length in characters.
func (s *EntityStore) ContentLength() int {
	return len(s.content)
}

// Add validates the span and author, then inserts a new entity into the
// active set. The entity text is sliced from the content between the
// span offsets. Manual entities carry full confidence.
//
// No overlap check runs here: two entities may cover the same or
// overlapping spans.
func (s *EntityStore) Add(span Span, label string, author User) (Entity, error) {
	if err := s.validateSpan(span); err != nil {
		return Entity{}, err
	}
	if label == "" {
		return Entity{}, errors.MissingFieldError("label")
	}
	if author.Name == "" {
		return Entity{}, errors.ValidationError("username", "must be set before annotating")
	}

	entity := Entity{
		ID:         uuid.New().String(),
		Text:       string(s.content[span.Start:span.End]),
		Label:      label,
		Start:      span.Start,
		End:        span.End,
		Confidence: 1.0,
		UserID:     author.ID,
		Username:   author.Name,
		CreatedAt:  time.Now().UTC(),
	}

	s.mu.Lock()
	s.index[entity.ID] = len(s.active)
	s.active = append(s.active, entity)
	s.mu.Unlock()
	return entity, nil
}

// Remove deletes the entity from the active set and returns its last
// known value. The returned entity keeps its original author; only the
// ledger entry for the removal carries the remover's identity.
//
// Removing an unknown or already-removed id fails with NOT_FOUND and
// leaves the store unchanged.
func (s *EntityStore) Remove(entityID string, author User) (Entity, error) {
	if author.Name == "" {
		return Entity{}, errors.ValidationError("username", "must be set before annotating")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[entityID]
	if !ok {
		return Entity{}, errors.NotFound("entity", entityID)
	}

	removed := s.active[pos]
	s.active = append(s.active[:pos], s.active[pos+1:]...)
	delete(s.index, entityID)
	for i := pos; i < len(s.active); i++ {
		s.index[s.active[i].ID] = i
	}
	return removed, nil
}

// Get returns the active entity with the given id.
func (s *EntityStore) Get(entityID string) (Entity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.index[entityID]
	if !ok {
		return Entity{}, false
	}
	return s.active[pos], true
}

// Entities returns the active set ordered by span start ascending, ties
// broken by insertion order. The persistence load path and the display
// layer both rely on this ordering being deterministic.
func (s *EntityStore) Entities() []Entity {
	s.mu.RLock()
	out := make([]Entity, len(s.active))
	copy(out, s.active)
	s.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}

// Len returns the number of active entities.
func (s *EntityStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.active)
}

// LabelCounts counts active entities per label. These are live counts:
// removed entities do not appear, unlike the ledger's action counts.
func (s *EntityStore) LabelCounts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int)
	for _, e := range s.active {
		counts[e.Label]++
	}
	return counts
}

// UserCounts counts active entities per author username.
func (s *EntityStore) UserCounts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int)
	for _, e := range s.active {
		counts[e.Username]++
	}
	return counts
}

func (s *EntityStore) validateSpan(span Span) error {
	if span.Start < 0 {
		return errors.ValidationError("start", "must not be negative")
	}
	if span.End > len(s.content) {
		return errors.ValidationError("end", "must not exceed content length")
	}
	if span.Start >= span.End {
		return errors.ValidationError("span", "start must be before end")
	}
	return nil
}

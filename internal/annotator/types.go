package annotator

import "time"

// Action identifies the kind of mutation recorded in the ledger.
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
)

// Span is a half-open character offset range [Start, End) into a text
// unit's content. Offsets count characters, not bytes.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// User identifies the annotator attributed with a mutation.
type User struct {
	ID   string `json:"user_id"`
	Name string `json:"username"`
}

// Entity is a labeled span within one text unit. Text is a denormalized
// cache of the content between Start and End; the offsets stay
// authoritative if the two ever disagree.
type Entity struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Label      string    `json:"label"`
	Start      int       `json:"start"`
	End        int       `json:"end"`
	Confidence float64   `json:"confidence"`
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	CreatedAt  time.Time `json:"timestamp"`
}

// Span returns the entity's offsets as a Span.
func (e Entity) Span() Span {
	return Span{Start: e.Start, End: e.End}
}

// HistoryEntry is one immutable audit record of an add or remove action.
// Entity is a value copy taken at action time, so deleting the entity
// later cannot rewrite history. The author fields record who performed
// the action, which for removals may differ from the entity's author.
type HistoryEntry struct {
	ID        string    `json:"id"`
	TextID    string    `json:"text_id"`
	Action    Action    `json:"action"`
	Entity    Entity    `json:"entity"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	SessionID string    `json:"session_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryFilter narrows a ledger query. Zero values match everything.
type HistoryFilter struct {
	TextID string
	UserID string
	Limit  int
}

// UserActivity aggregates ledger actions for one user. Counts include
// removals, so they are action counts, not surviving-entity counts.
type UserActivity struct {
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	TotalActions int       `json:"total_actions"`
	Adds         int       `json:"adds"`
	Removes      int       `json:"removes"`
	TextsTouched int       `json:"texts_touched"`
	FirstAction  time.Time `json:"first_action"`
	LastAction   time.Time `json:"last_action"`
}

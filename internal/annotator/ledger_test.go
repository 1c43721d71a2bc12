package annotator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entityFixture(id, text, label string, start, end int, author User) Entity {
	return Entity{
		ID:       id,
		Text:     text,
		Label:    label,
		Start:    start,
		End:      end,
		UserID:   author.ID,
		Username: author.Name,
	}
}

func TestLedger_Record(t *testing.T) {
	t.Run("appends entries in call order with fresh ids", func(t *testing.T) {
		ledger := NewLedger()

		first := ledger.Record(ActionAdd, "text-1", entityFixture("e-1", "Tim Cook", "PERSON", 0, 8, alice), alice, "s-1")
		second := ledger.Record(ActionRemove, "text-1", entityFixture("e-1", "Tim Cook", "PERSON", 0, 8, alice), alice, "s-1")

		assert.NotEqual(t, first.ID, second.ID)
		entries := ledger.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, ActionAdd, entries[0].Action)
		assert.Equal(t, ActionRemove, entries[1].Action)
	})

	t.Run("stores the entity by value", func(t *testing.T) {
		ledger := NewLedger()
		entity := entityFixture("e-1", "Tim Cook", "PERSON", 0, 8, alice)

		ledger.Record(ActionAdd, "text-1", entity, alice, "s-1")
		entity.Label = "ORGANIZATION"

		entries := ledger.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, "PERSON", entries[0].Entity.Label)
	})

	t.Run("removal entry attributes the remover, not the entity author", func(t *testing.T) {
		ledger := NewLedger()
		entity := entityFixture("e-1", "Tim Cook", "PERSON", 0, 8, alice)

		entry := ledger.Record(ActionRemove, "text-1", entity, bob, "s-1")

		assert.Equal(t, "bob", entry.Username)
		assert.Equal(t, "alice", entry.Entity.Username)
	})
}

func TestLedger_History(t *testing.T) {
	ledger := NewLedger()
	ledger.Record(ActionAdd, "text-1", entityFixture("e-1", "Tim Cook", "PERSON", 0, 8, alice), alice, "s-1")
	ledger.Record(ActionAdd, "text-2", entityFixture("e-2", "Apple Inc.", "ORGANIZATION", 23, 33, alice), alice, "s-1")
	ledger.Record(ActionAdd, "text-1", entityFixture("e-3", "Cupertino", "LOCATION", 37, 46, bob), bob, "s-2")

	t.Run("returns all entries newest-first", func(t *testing.T) {
		entries := ledger.History(HistoryFilter{})
		require.Len(t, entries, 3)
		assert.Equal(t, "e-3", entries[0].Entity.ID)
		assert.Equal(t, "e-2", entries[1].Entity.ID)
		assert.Equal(t, "e-1", entries[2].Entity.ID)
	})

	t.Run("filters by text id", func(t *testing.T) {
		entries := ledger.History(HistoryFilter{TextID: "text-1"})
		require.Len(t, entries, 2)
		assert.Equal(t, "e-3", entries[0].Entity.ID)
		assert.Equal(t, "e-1", entries[1].Entity.ID)
	})

	t.Run("filters by user id", func(t *testing.T) {
		entries := ledger.History(HistoryFilter{UserID: "u-bob"})
		require.Len(t, entries, 1)
		assert.Equal(t, "e-3", entries[0].Entity.ID)
	})

	t.Run("limit truncates to most recent", func(t *testing.T) {
		entries := ledger.History(HistoryFilter{Limit: 2})
		require.Len(t, entries, 2)
		assert.Equal(t, "e-3", entries[0].Entity.ID)
		assert.Equal(t, "e-2", entries[1].Entity.ID)
	})
}

func TestLedger_Statistics(t *testing.T) {
	t.Run("counts actions including removals", func(t *testing.T) {
		ledger := NewLedger()
		ledger.Record(ActionAdd, "text-1", entityFixture("e-1", "Tim Cook", "PERSON", 0, 8, alice), alice, "s-1")
		ledger.Record(ActionAdd, "text-1", entityFixture("e-2", "Apple Inc.", "ORGANIZATION", 23, 33, alice), alice, "s-1")
		ledger.Record(ActionAdd, "text-1", entityFixture("e-3", "Cupertino", "LOCATION", 37, 46, bob), bob, "s-2")
		ledger.Record(ActionRemove, "text-1", entityFixture("e-2", "Apple Inc.", "ORGANIZATION", 23, 33, alice), alice, "s-1")

		stats := ledger.Statistics()
		require.Len(t, stats, 2)

		assert.Equal(t, "u-alice", stats[0].UserID)
		assert.Equal(t, 3, stats[0].TotalActions)
		assert.Equal(t, 2, stats[0].Adds)
		assert.Equal(t, 1, stats[0].Removes)

		assert.Equal(t, "u-bob", stats[1].UserID)
		assert.Equal(t, 1, stats[1].TotalActions)
	})

	t.Run("counts distinct texts touched", func(t *testing.T) {
		ledger := NewLedger()
		ledger.Record(ActionAdd, "text-1", entityFixture("e-1", "Tim", "PERSON", 0, 3, alice), alice, "s-1")
		ledger.Record(ActionAdd, "text-1", entityFixture("e-2", "Cook", "PERSON", 4, 8, alice), alice, "s-1")
		ledger.Record(ActionAdd, "text-2", entityFixture("e-3", "Apple", "ORGANIZATION", 0, 5, alice), alice, "s-1")

		stats := ledger.Statistics()
		require.Len(t, stats, 1)
		assert.Equal(t, 2, stats[0].TextsTouched)
		assert.Equal(t, 3, stats[0].TotalActions)
	})

	t.Run("ties resolve by first-seen order", func(t *testing.T) {
		ledger := NewLedger()
		ledger.Record(ActionAdd, "text-1", entityFixture("e-1", "Tim", "PERSON", 0, 3, bob), bob, "s-1")
		ledger.Record(ActionAdd, "text-1", entityFixture("e-2", "Cook", "PERSON", 4, 8, alice), alice, "s-2")

		stats := ledger.Statistics()
		require.Len(t, stats, 2)
		assert.Equal(t, "u-bob", stats[0].UserID)
		assert.Equal(t, "u-alice", stats[1].UserID)
	})

	t.Run("tracks first and last action timestamps", func(t *testing.T) {
		ledger := NewLedger()
		first := ledger.Record(ActionAdd, "text-1", entityFixture("e-1", "Tim", "PERSON", 0, 3, alice), alice, "s-1")
		last := ledger.Record(ActionAdd, "text-1", entityFixture("e-2", "Cook", "PERSON", 4, 8, alice), alice, "s-1")

		stats := ledger.Statistics()
		require.Len(t, stats, 1)
		assert.Equal(t, first.Timestamp, stats[0].FirstAction)
		assert.Equal(t, last.Timestamp, stats[0].LastAction)
	})
}

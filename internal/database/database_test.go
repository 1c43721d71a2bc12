package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/annotator-api/internal/models"
)

func TestInitialize(t *testing.T) {
	t.Run("creates database file and directory", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "data", "annotator.db")

		db, err := Initialize(dbPath, false)
		require.NoError(t, err)
		defer db.Close()

		assert.NoError(t, db.HealthCheck())
	})

	t.Run("migrates annotation models", func(t *testing.T) {
		db, err := Initialize(filepath.Join(t.TempDir(), "annotator.db"), false)
		require.NoError(t, err)
		defer db.Close()

		err = db.AutoMigrate(
			&models.TextUnit{},
			&models.Annotation{},
			&models.AnnotationHistory{},
			&models.AnnotationSession{},
		)
		require.NoError(t, err)

		for _, table := range []string{"texts", "annotations", "annotation_history", "annotation_sessions"} {
			assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
		}
	})
}

func TestHealthCheck(t *testing.T) {
	t.Run("fails on nil database", func(t *testing.T) {
		var db *DB
		assert.Error(t, db.HealthCheck())
	})

	t.Run("fails after close", func(t *testing.T) {
		db, err := Initialize(filepath.Join(t.TempDir(), "annotator.db"), false)
		require.NoError(t, err)
		require.NoError(t, db.Close())

		assert.Error(t, db.HealthCheck())
	})
}

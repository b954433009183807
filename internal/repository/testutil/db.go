package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/pages-alex-alex2006hw/gulliver/internal/db"
	"github.com/pages-alex-alex2006hw/gulliver/internal/model"

	"github.com/stretchr/testify/require"
)

// NewTestDB opens an in-memory sqlite database with the full schema
// applied and closes it when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(ON)")
	require.NoError(t, err)
	// In-memory sqlite vanishes when its last connection closes.
	database.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(database))

	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}

// SeedPwa inserts a record directly, bypassing the repository, and
// returns its ID. Zero timestamps default to a fixed instant so tests
// stay deterministic.
func SeedPwa(t *testing.T, database *sql.DB, pwa model.PWA) string {
	t.Helper()

	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if pwa.Created.IsZero() {
		pwa.Created = base
	}
	if pwa.Updated.IsZero() {
		pwa.Updated = pwa.Created
	}
	if pwa.ManifestURL == "" {
		pwa.ManifestURL = "https://example.com/" + pwa.ID + "/manifest.json"
	}

	_, err := database.ExecContext(
		context.Background(),
		`INSERT INTO pwas (id, name, display_name, description, absolute_start_url, manifest_url, icon_url_128,
		   lighthouse_score, web_page_test, page_speed, created, updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		pwa.ID,
		pwa.Name,
		pwa.DisplayName,
		pwa.Description,
		pwa.AbsoluteStartURL,
		pwa.ManifestURL,
		pwa.IconURL128,
		pwa.LighthouseScore,
		nullableString(pwa.WebPageTest),
		nullableString(pwa.PageSpeed),
		pwa.Created.UTC().Format(time.RFC3339),
		pwa.Updated.UTC().Format(time.RFC3339),
	)
	require.NoError(t, err)

	return pwa.ID
}

func nullableString(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

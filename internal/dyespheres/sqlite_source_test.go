package dyespheres

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDB creates a colors table on disk and returns its path.
func newTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dyes.db")
	conn, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`CREATE TABLE colors (item_id INTEGER, hex TEXT, name TEXT)`)
	require.NoError(t, err)
	rows := []struct {
		id   any
		hex  any
		name string
	}{
		{5729, "#FF6B35", "Orange"},
		{5730, "00FF00", "Green"},
		{nil, "#123456", "Nameless"},
		{5731, nil, "Colorless"},
	}
	for _, r := range rows {
		_, err := conn.Exec(`INSERT INTO colors (item_id, hex, name) VALUES (?, ?, ?)`, r.id, r.hex, r.name)
		require.NoError(t, err)
	}
	return path
}

func TestSQLiteSourceRecords(t *testing.T) {
	src := &SQLiteSource{Path: newTestDB(t), Query: SQLiteQuery}
	got, err := src.Records(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Record{
		{Index: 0, ID: "5729", Hex: "#FF6B35"},
		{Index: 1, ID: "5730", Hex: "00FF00"},
		{Index: 2, ID: "", Hex: "#123456"},
		{Index: 3, ID: "5731", Hex: ""},
	}, got)
}

func TestSQLiteSourceExtraColumns(t *testing.T) {
	src := &SQLiteSource{Path: newTestDB(t), Query: `SELECT name, hex, item_id FROM colors WHERE item_id IS NOT NULL ORDER BY item_id DESC`}
	got, err := src.Records(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Colorless", got[0].ID)
	assert.Equal(t, "Orange", got[2].ID)
}

func TestSQLiteSourceErrors(t *testing.T) {
	_, err := (&SQLiteSource{Path: filepath.Join(t.TempDir(), "missing.db")}).Records(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceNotFound))

	path := newTestDB(t)
	_, err = (&SQLiteSource{Path: path, Query: "SELECT hex FROM colors"}).Records(context.Background())
	assert.Error(t, err, "single column query")

	_, err = (&SQLiteSource{Path: path, Query: "SELECT * FROM nope"}).Records(context.Background())
	assert.Error(t, err, "unknown table")
}

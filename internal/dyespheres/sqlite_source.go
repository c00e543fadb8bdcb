package dyespheres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteSource reads records from a SQLite database. Query must return the
// identifier and the color as its first two columns; row order is kept.
type SQLiteSource struct {
	Path  string
	Query string
}

func (s *SQLiteSource) String() string { return "sqlite:" + s.Path }

func (s *SQLiteSource) Records(ctx context.Context) ([]Record, error) {
	// sqlite3 creates missing files on open, check first
	if _, err := os.Stat(s.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.Path)
		}
		return nil, err
	}

	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", s.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer conn.Close()
	conn.SetMaxOpenConns(1)

	query := s.Query
	if query == "" {
		query = SQLiteQuery
	}
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	if len(cols) < 2 {
		return nil, fmt.Errorf("query must return identifier and color columns, got %d column(s)", len(cols))
	}

	var records []Record
	dest := make([]any, len(cols))
	var id, hex sql.NullString
	dest[0], dest[1] = &id, &hex
	for i := 2; i < len(cols); i++ {
		dest[i] = new(sql.RawBytes)
	}
	for i := 0; rows.Next(); i++ {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan record %d: %w", i, err)
		}
		records = append(records, Record{
			Index: i,
			ID:    strings.TrimSpace(id.String),
			Hex:   strings.TrimSpace(hex.String),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return records, nil
}

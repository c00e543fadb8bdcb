package dyespheres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cast"
)

// ErrSourceNotFound means the record source itself is missing. It aborts a
// run before any record is processed.
var ErrSourceNotFound = errors.New("record source not found")

// Record is one (identifier, color) entry as read from a source, before
// validation. Index is the position in the source.
type Record struct {
	Index int
	ID    string
	Hex   string
}

// Source yields the ordered records of a color list.
type Source interface {
	Records(ctx context.Context) ([]Record, error)
	String() string
}

// JSONSource reads a JSON array of objects. Identifier and color are looked
// up by key; numbers and strings are both accepted for either.
type JSONSource struct {
	Fs         afero.Fs
	Path       string
	IDField    string
	ColorField string
}

func (s *JSONSource) String() string { return "json:" + s.Path }

// Records decodes the whole array. Entries that are not objects are kept as
// empty records so they count as present but get skipped later.
func (s *JSONSource) Records(ctx context.Context) ([]Record, error) {
	f, err := s.Fs.Open(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.Path)
		}
		return nil, err
	}
	defer f.Close()

	var raw []any
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.Path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(raw))
	for i, e := range raw {
		rec := Record{Index: i}
		if m, ok := e.(map[string]any); ok {
			rec.ID = fieldString(m[s.IDField])
			rec.Hex = fieldString(m[s.ColorField])
		}
		records = append(records, rec)
	}
	return records, nil
}

func fieldString(v any) string {
	if v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// OpenSource picks the SQLite source when configured, JSON otherwise.
func OpenSource(cfg *Config, fsys afero.Fs) Source {
	if cfg.Input.SQLite != "" {
		return &SQLiteSource{Path: cfg.Input.SQLite, Query: cfg.Input.Query}
	}
	return &JSONSource{
		Fs:         fsys,
		Path:       cfg.Input.JSON,
		IDField:    cfg.Input.IDField,
		ColorField: cfg.Input.ColorField,
	}
}

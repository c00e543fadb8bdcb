package dyespheres

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"
)

// Per-record failures. None of them stop a run.
var (
	ErrMissingIdentifier   = errors.New("missing identifier")
	ErrInvalidIdentifier   = errors.New("invalid identifier")
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
)

// Options carries the collaborators of Run. Zero values fall back to the OS
// filesystem, a null logger and the source described by the config.
type Options struct {
	Fs     afero.Fs
	Logger hclog.Logger
	Source Source
}

// Skip records why a record produced no icon.
type Skip struct {
	Index int
	ID    string
	Err   error
}

// Report summarizes a run.
type Report struct {
	Total     int
	Generated int
	Files     int
	Skipped   []Skip
	OutputDir string
	Elapsed   time.Duration

	mu sync.Mutex
}

func (r *Report) String() string {
	return fmt.Sprintf("generated %d of %d sphere images in %s", r.Generated, r.Total, r.OutputDir)
}

func (r *Report) skip(log hclog.Logger, rec Record, err error) {
	r.mu.Lock()
	r.Skipped = append(r.Skipped, Skip{Index: rec.Index, ID: rec.ID, Err: err})
	r.mu.Unlock()
	log.Warn("skipping record", "index", rec.Index, "id", rec.ID, "reason", err)
}

type job struct {
	rec   Record
	color Color
}

// Run renders one icon per valid record of the configured source. A missing
// source is fatal; every per-record problem is logged and skipped. When ctx
// is cancelled, records not yet started are skipped and ctx.Err() is
// returned together with the partial report.
func Run(ctx context.Context, cfg *Config, opts Options) (*Report, error) {
	log := opts.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}
	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	src := opts.Source
	if src == nil {
		src = OpenSource(cfg, fsys)
	}
	params := cfg.Params()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	records, err := src.Records(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("found records", "count", len(records), "source", src.String())

	dir := cfg.Output.Dir
	exists, err := afero.DirExists(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat output directory: %w", err)
	}
	if !exists {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
		log.Info("created output directory", "dir", dir)
	}

	report := &Report{Total: len(records), OutputDir: dir}

	// Validate in source order so duplicate resolution is deterministic.
	jobs := make([]job, 0, len(records))
	seen := make(map[string]int, len(records))
	for _, rec := range records {
		c, err := checkRecord(rec)
		if err == nil {
			if first, dup := seen[rec.ID]; dup {
				err = fmt.Errorf("%w %q: already used by record %d", ErrDuplicateIdentifier, rec.ID, first)
			}
		}
		if err != nil {
			report.skip(log, rec, err)
			continue
		}
		seen[rec.ID] = rec.Index
		jobs = append(jobs, job{rec: rec, color: c})
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	every := int64(imax(cfg.ProgressEvery, 1))

	var generated, files int64
	p := pool.New().WithMaxGoroutines(workers)
	for _, j := range jobs {
		j := j
		p.Go(func() {
			defer func() {
				if r := recover(); r != nil {
					report.skip(log, j.rec, fmt.Errorf("render panicked: %v", r))
				}
			}()
			if err := ctx.Err(); err != nil {
				report.skip(log, j.rec, err)
				return
			}
			img := RenderSphere(j.color, params)
			paths, err := SaveIcon(fsys, dir, j.rec.ID, cfg.Output.Ext, img, cfg.Output.Sizes)
			atomic.AddInt64(&files, int64(len(paths)))
			if err != nil {
				report.skip(log, j.rec, err)
				return
			}
			if n := atomic.AddInt64(&generated, 1); n%every == 0 {
				log.Info("generated images", "count", n)
			}
			log.Debug("generated icon", "id", j.rec.ID, "color", j.color.Hex(), "path", paths[0])
		})
	}
	p.Wait()

	sort.Slice(report.Skipped, func(a, b int) bool { return report.Skipped[a].Index < report.Skipped[b].Index })
	report.Generated = int(generated)
	report.Files = int(files)
	report.Elapsed = time.Since(start)
	log.Info("done", "generated", report.Generated, "total", report.Total, "skipped", len(report.Skipped), "dir", dir, "elapsed", report.Elapsed)

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

// checkRecord validates the identifier and parses the color.
func checkRecord(rec Record) (Color, error) {
	if rec.ID == "" {
		return Color{}, ErrMissingIdentifier
	}
	if rec.ID == "." || rec.ID == ".." || strings.ContainsAny(rec.ID, "/\\\x00") {
		return Color{}, fmt.Errorf("%w %q: must be usable as a file name", ErrInvalidIdentifier, rec.ID)
	}
	if rec.Hex == "" {
		return Color{}, fmt.Errorf("%w: missing color", ErrInvalidColor)
	}
	return ParseHex(rec.Hex)
}

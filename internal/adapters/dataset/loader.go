// Package dataset loads the initial houses and characters from YAML or JSON
// files, and decodes single records supplied to the CLI.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/jsamuelsen11/realm-chronicle/internal/domain"
	"github.com/jsamuelsen11/realm-chronicle/internal/platform/fanout"
	"github.com/jsamuelsen11/realm-chronicle/internal/ports"
)

var (
	_ ports.DatasetLoader = (*Loader)(nil)
	_ ports.HealthChecker = (*Loader)(nil)
)

// Loader reads a list of dataset files. Files are read and decoded
// concurrently and merged in the order given.
type Loader struct {
	paths       []string
	concurrency int
	logger      *slog.Logger
}

// NewLoader creates a Loader for paths reading at most concurrency files at
// once. A nil logger discards output.
func NewLoader(paths []string, concurrency int, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{
		paths:       paths,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Load reads every file and merges their sections in path order. Failures
// from all files are reported together.
func (l *Loader) Load(ctx context.Context) (*ports.Dataset, error) {
	if len(l.paths) == 0 {
		return nil, fmt.Errorf("loading dataset: no paths configured: %w", domain.ErrNotFound)
	}

	results := fanout.Run(ctx, l.concurrency, l.paths, l.loadFile)

	merged := &ports.Dataset{}
	var errs []error
	for i, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		merged.Characters = append(merged.Characters, r.Value.Characters...)
		merged.Houses = append(merged.Houses, r.Value.Houses...)
		l.logger.DebugContext(ctx, "dataset file loaded",
			slog.String("path", l.paths[i]),
			slog.Int("characters", len(r.Value.Characters)),
			slog.Int("houses", len(r.Value.Houses)),
		)
	}

	if err := errors.Join(errs...); err != nil {
		l.logger.ErrorContext(ctx, "failed to load dataset",
			slog.String("operation", "Load"),
			slog.Any("paths", l.paths),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	l.logger.InfoContext(ctx, "dataset loaded",
		slog.Int("files", len(l.paths)),
		slog.Int("characters", len(merged.Characters)),
		slog.Int("houses", len(merged.Houses)),
	)
	return merged, nil
}

func (l *Loader) loadFile(ctx context.Context, path string) (*ports.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	ds, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Name implements ports.HealthChecker.
func (l *Loader) Name() string {
	return "dataset"
}

// HealthCheck reports whether every configured file is readable.
func (l *Loader) HealthCheck(ctx context.Context) error {
	if len(l.paths) == 0 {
		return errors.New("no dataset paths configured")
	}
	var errs []error
	for _, p := range l.paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		info, err := os.Stat(p)
		switch {
		case err != nil:
			errs = append(errs, err)
		case info.IsDir():
			errs = append(errs, fmt.Errorf("%s: is a directory", p))
		}
	}
	return errors.Join(errs...)
}

package rewriter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"catalogimg/internal/catalog"
	"catalogimg/internal/logging"
	"catalogimg/internal/placeholder"
)

// Options controls a single rewrite run.
type Options struct {
	Path string
	// DryRun computes the result without writing the catalog.
	DryRun bool
	// Force writes the catalog even when no image changed.
	Force bool
	// Lock holds the catalog lock for the duration of the run.
	Lock bool
}

// Result reports the outcome of a run.
type Result struct {
	RunID     string               `json:"run_id"`
	Path      string               `json:"path"`
	Total     int                  `json:"total"`
	Rewritten int                  `json:"rewritten"`
	DryRun    bool                 `json:"dry_run"`
	Written   bool                 `json:"written"`
	Changes   []placeholder.Change `json:"changes"`
}

// Service rewrites catalog images.
type Service struct {
	logger *slog.Logger
	newID  func() string
}

// New constructs a Service. A nil logger discards output.
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logging.NewComponentLogger(logger, "rewriter"),
		newID:  uuid.NewString,
	}
}

// Run executes a rewrite pass over the catalog at opts.Path.
func (s *Service) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("%w: catalog path is required", catalog.ErrFileAccess)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := s.newID()
	logger := s.logger.With(
		logging.String(logging.FieldRunID, runID),
		logging.String(logging.FieldCatalog, opts.Path),
	)

	if opts.Lock && !opts.DryRun {
		lock, err := catalog.Acquire(opts.Path)
		if err != nil {
			logger.Debug("catalog lock unavailable", logging.Args(logging.Error(err))...)
			return nil, err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn("release catalog lock", logging.Args(logging.Error(err))...)
			}
		}()
	}

	doc, err := catalog.Load(opts.Path)
	if err != nil {
		logger.Debug("load catalog failed", logging.Args(logging.Error(err))...)
		return nil, err
	}
	products := doc.Products()

	var outcome placeholder.Result
	if opts.DryRun {
		outcome = placeholder.Plan(products)
	} else {
		outcome = placeholder.Rewrite(products)
	}
	for _, change := range outcome.Changes {
		if !change.Rewritten {
			continue
		}
		logger.Debug("placeholder generated", logging.Args(
			logging.Int("index", change.Index),
			logging.String("name", change.Name),
			logging.String("color", placeholder.HexColor(change.Color)),
		)...)
	}

	result := &Result{
		RunID:     runID,
		Path:      opts.Path,
		Total:     outcome.Total,
		Rewritten: outcome.Rewritten,
		DryRun:    opts.DryRun,
		Changes:   outcome.Changes,
	}

	if opts.DryRun || (outcome.Rewritten == 0 && !opts.Force) {
		logger.Info("catalog left unchanged", logging.Args(
			logging.Int("products", result.Total),
			logging.Int("pending", result.Rewritten),
			logging.Bool("dry_run", opts.DryRun),
		)...)
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := catalog.Save(opts.Path, doc); err != nil {
		logger.Debug("save catalog failed", logging.Args(logging.Error(err))...)
		return nil, err
	}
	result.Written = true

	logger.Info("catalog rewritten", logging.Args(
		logging.Int("products", result.Total),
		logging.Int("rewritten", result.Rewritten),
	)...)
	return result, nil
}

// Inspect reports what a run would change without taking the lock or writing.
func (s *Service) Inspect(ctx context.Context, path string) (*Result, error) {
	return s.Run(ctx, Options{Path: path, DryRun: true})
}

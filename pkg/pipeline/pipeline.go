// pkg/pipeline/pipeline.go

// Package pipeline wires the processing stages together: one invocation
// takes a frame snapshot through cleaning, validation and scoring and
// returns every artifact the outer collaborators consume.
package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tidycheck/tidycheck/pkg/cleaner"
	"github.com/tidycheck/tidycheck/pkg/config"
	"github.com/tidycheck/tidycheck/pkg/frame"
	"github.com/tidycheck/tidycheck/pkg/model"
	"github.com/tidycheck/tidycheck/pkg/parser"
	"github.com/tidycheck/tidycheck/pkg/validator"
)

// Result is the full outcome of one processing run. Every entity in it is
// created fresh for the run and owned by the caller afterwards.
type Result struct {
	RunID       string                   `json:"run_id"`
	Frame       *frame.Frame             `json:"-"`
	Mapping     model.ColumnMapping      `json:"column_mapping"`
	CleaningLog []model.CleaningLogEntry `json:"cleaning_log"`
	Issues      []model.ValidationIssue  `json:"issues"`
	Summary     model.ValidationSummary  `json:"validation_summary"`
	Columns     []model.ColumnInfo       `json:"columns"`
}

// Runner executes processing runs. A single Runner may serve concurrent
// runs: each run works on its own frame snapshot and shares no mutable
// state with any other.
type Runner struct {
	cfg       *config.Config
	cleaner   *cleaner.Cleaner
	validator *validator.Engine
	logger    *zap.Logger
}

// New creates a Runner from the given configuration.
func New(cfg *config.Config, logger *zap.Logger) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("configuration cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	cl, err := cleaner.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cleaner: %w", err)
	}
	engine, err := validator.NewEngine(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create validation engine: %w", err)
	}

	return &Runner{
		cfg:       cfg,
		cleaner:   cl,
		validator: engine,
		logger:    logger,
	}, nil
}

// Run processes one frame: clean, validate, score, profile. The mapping is
// the normalized-to-original header mapping produced at ingestion; a nil
// mapping is treated as identity.
func (r *Runner) Run(f *frame.Frame, mapping model.ColumnMapping) (*Result, error) {
	runID := uuid.New().String()
	logger := r.logger.With(zap.String("runID", runID))
	start := time.Now()

	cleaned, log, err := r.cleaner.Clean(f)
	if err != nil {
		return nil, err
	}

	issues := r.validator.Validate(cleaned)
	summary := r.validator.Score(cleaned, issues)
	columns := parser.ColumnProfiles(cleaned, mapping)

	logger.Info("Processing run completed",
		zap.Int("rows", summary.TotalRows),
		zap.Int("columns", summary.TotalColumns),
		zap.Int("issues", summary.IssueCount),
		zap.String("status", string(summary.Status)),
		zap.Duration("elapsed", time.Since(start)))

	return &Result{
		RunID:       runID,
		Frame:       cleaned,
		Mapping:     mapping,
		CleaningLog: log,
		Issues:      issues,
		Summary:     summary,
		Columns:     columns,
	}, nil
}

// RunFile parses a CSV or Excel file and processes the resulting frame.
func (r *Runner) RunFile(path string) (*Result, error) {
	f, meta, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return r.Run(f, meta.ColumnMapping)
}

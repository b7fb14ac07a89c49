// pkg/cleaner/cleaner.go
package cleaner

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tidycheck/tidycheck/pkg/classify"
	"github.com/tidycheck/tidycheck/pkg/config"
	"github.com/tidycheck/tidycheck/pkg/frame"
	"github.com/tidycheck/tidycheck/pkg/model"
)

// ErrEmptyDataset is returned when a frame has no rows or no columns, either
// on input or after the empty-row/column stages removed everything.
var ErrEmptyDataset = errors.New("dataset has no rows or columns")

// Cleaner applies structural cleanup and per-column normalization to a
// frame, emitting an ordered cleaning log of every transformation that had
// an effect. Cleaning never mutates the input frame and never fails for
// dirty-but-parseable data; ambiguous values degrade to missing.
type Cleaner struct {
	classifier *classify.Classifier
	workers    int
	logger     *zap.Logger
}

// New creates a Cleaner from the given configuration.
func New(cfg *config.Config, logger *zap.Logger) (*Cleaner, error) {
	if cfg == nil {
		return nil, errors.New("configuration cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	workers := cfg.WorkerPoolSize
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Cleaner{
		classifier: classify.New(cfg.DateThreshold, cfg.NumericThreshold, cfg.SampleSize),
		workers:    workers,
		logger:     logger,
	}, nil
}

// Classifier exposes the classifier used during cleaning so that chart
// selection sees the same decision a column received here.
func (c *Cleaner) Classifier() *classify.Classifier {
	return c.classifier
}

// columnResult carries the outcome of one column transform so that results
// can be reassembled in column order regardless of execution order.
type columnResult struct {
	values  []frame.Value
	entries []model.CleaningLogEntry
}

// Clean runs the full cleaning pipeline and returns the cleaned frame plus
// the ordered cleaning log. Stage order: drop empty rows, drop empty
// columns, trim whitespace, then per-column normalization dispatched on the
// classifier verdict.
func (c *Cleaner) Clean(f *frame.Frame) (*frame.Frame, []model.CleaningLogEntry, error) {
	if f == nil || f.NumRows() == 0 || f.NumCols() == 0 {
		return nil, nil, ErrEmptyDataset
	}

	var log []model.CleaningLogEntry
	cols := f.Columns()
	rows := f.CloneRows()

	// 1. Remove fully empty rows
	rows, rowsRemoved := dropEmptyRows(rows)
	if rowsRemoved > 0 {
		log = append(log, model.CleaningLogEntry{
			Operation:   model.OpRemoveEmptyRows,
			Description: fmt.Sprintf("Removed %d empty rows", rowsRemoved),
			Count:       rowsRemoved,
		})
	}

	// 2. Remove fully empty columns
	cols, rows, droppedCols := dropEmptyColumns(cols, rows)
	if len(droppedCols) > 0 {
		log = append(log, model.CleaningLogEntry{
			Operation:   model.OpRemoveEmptyColumns,
			Description: fmt.Sprintf("Removed %d empty columns: %v", len(droppedCols), droppedCols),
			Count:       len(droppedCols),
			Columns:     droppedCols,
		})
	}

	if len(rows) == 0 || len(cols) == 0 {
		return nil, nil, ErrEmptyDataset
	}

	// 3. Trim whitespace from text cells
	trimmed := trimWhitespace(rows)
	if trimmed > 0 {
		log = append(log, model.CleaningLogEntry{
			Operation:   model.OpTrimWhitespace,
			Description: fmt.Sprintf("Trimmed whitespace from %d cells", trimmed),
			Count:       trimmed,
		})
	}

	// 4. Per-column normalization. Columns are independent, so the
	// transforms run on a bounded pool; results are written back by index
	// to keep output column order equal to input order.
	results := make([]columnResult, len(cols))
	var g errgroup.Group
	g.SetLimit(c.workers)
	for idx := range cols {
		idx := idx
		g.Go(func() error {
			column := columnOf(rows, idx)
			verdict := c.classifier.Classify(column)
			values, entries := transformColumn(column, cols[idx], verdict)
			results[idx] = columnResult{values: values, entries: entries}
			return nil
		})
	}
	// Column transforms cannot fail; degradation is recorded in the log.
	_ = g.Wait()

	for idx, res := range results {
		if res.values != nil {
			for i := range rows {
				rows[i][idx] = res.values[i]
			}
		}
		log = append(log, res.entries...)
	}

	cleaned, err := frame.New(cols, rows)
	if err != nil {
		return nil, nil, err
	}

	c.logger.Info("Cleaned dataset",
		zap.Int("rows", cleaned.NumRows()),
		zap.Int("columns", cleaned.NumCols()),
		zap.Int("operations", len(log)))

	return cleaned, log, nil
}

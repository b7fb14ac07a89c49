// pkg/validator/validator.go
package validator

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tidycheck/tidycheck/pkg/frame"
	"github.com/tidycheck/tidycheck/pkg/model"
)

// Engine scans a cleaned frame for quality issues. All checks are total:
// they cannot fail for a structurally valid frame.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a validation engine.
func NewEngine(logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Engine{logger: logger}, nil
}

// Validate runs all checks and concatenates their issues in check order:
// missing values, then duplicate rows, then mixed types. Issues are never
// deduplicated across checks.
func (e *Engine) Validate(f *frame.Frame) []model.ValidationIssue {
	var issues []model.ValidationIssue
	issues = append(issues, e.checkMissingValues(f)...)
	issues = append(issues, e.checkDuplicates(f)...)
	issues = append(issues, e.checkMixedTypes(f)...)

	e.logger.Info("Validated dataset",
		zap.Int("rows", f.NumRows()),
		zap.Int("columns", f.NumCols()),
		zap.Int("issues", len(issues)))

	return issues
}

// checkMissingValues emits one issue per column containing missing cells.
// Severity scales with the missing percentage of the column.
func (e *Engine) checkMissingValues(f *frame.Frame) []model.ValidationIssue {
	var issues []model.ValidationIssue
	cols := f.Columns()
	for idx, name := range cols {
		nullCount := 0
		var nullRows []int
		for r := 0; r < f.NumRows(); r++ {
			if f.Cell(r, idx).IsNull() {
				nullCount++
				if len(nullRows) < 10 {
					nullRows = append(nullRows, r)
				}
			}
		}
		if nullCount == 0 {
			continue
		}

		pct := float64(nullCount) / float64(f.NumRows()) * 100
		severity := model.SeverityLow
		switch {
		case pct > 50:
			severity = model.SeverityHigh
		case pct > 20:
			severity = model.SeverityMedium
		}

		issues = append(issues, model.ValidationIssue{
			ColumnName: name,
			Type:       model.IssueMissingValue,
			Severity:   severity,
			Description: fmt.Sprintf("Column '%s' has %d missing values (%.1f%%). Affected rows (first 10): %v",
				name, nullCount, pct, nullRows),
		})
	}
	return issues
}

// checkDuplicates detects full-row duplicates, keeping the first occurrence
// of each row as canonical.
func (e *Engine) checkDuplicates(f *frame.Frame) []model.ValidationIssue {
	seen := make(map[string]struct{}, f.NumRows())
	duplicateCount := 0
	var duplicateRows []int
	for r := 0; r < f.NumRows(); r++ {
		key := frame.RowFingerprint(f.Row(r))
		if _, ok := seen[key]; ok {
			duplicateCount++
			if len(duplicateRows) < 20 {
				duplicateRows = append(duplicateRows, r)
			}
			continue
		}
		seen[key] = struct{}{}
	}
	if duplicateCount == 0 {
		return nil
	}

	pct := float64(duplicateCount) / float64(f.NumRows()) * 100
	severity := model.SeverityLow
	switch {
	case pct > 50:
		severity = model.SeverityHigh
	case pct > 10:
		severity = model.SeverityMedium
	}

	return []model.ValidationIssue{{
		Type:     model.IssueDuplicateRow,
		Severity: severity,
		Description: fmt.Sprintf("Found %d duplicate rows (%.1f%%). Row indices (first 20): %v",
			duplicateCount, pct, duplicateRows),
	}}
}

// checkMixedTypes flags columns whose non-missing cells span more than one
// runtime kind, unless every kind present is numeric (int mixed with float
// is not a quality problem).
func (e *Engine) checkMixedTypes(f *frame.Frame) []model.ValidationIssue {
	var issues []model.ValidationIssue
	cols := f.Columns()
	for idx, name := range cols {
		kindCounts := make(map[string]int)
		allNumeric := true
		for r := 0; r < f.NumRows(); r++ {
			v := f.Cell(r, idx)
			if v.IsNull() {
				continue
			}
			kindCounts[v.Kind().String()]++
			if !v.Kind().IsNumeric() {
				allNumeric = false
			}
		}
		if len(kindCounts) <= 1 || allNumeric {
			continue
		}

		issues = append(issues, model.ValidationIssue{
			ColumnName: name,
			Type:       model.IssueMixedType,
			Severity:   model.SeverityMedium,
			Description: fmt.Sprintf("Column '%s' contains mixed data types: %v",
				name, kindCounts),
		})
	}
	return issues
}

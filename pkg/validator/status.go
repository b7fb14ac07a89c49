// pkg/validator/status.go
package validator

import (
	"fmt"

	"github.com/tidycheck/tidycheck/pkg/frame"
	"github.com/tidycheck/tidycheck/pkg/model"
)

// Score aggregates validation results and dataset statistics into the
// overall readiness verdict. First matching rule wins:
//
//	NOT_READY: any high severity issue, or >20% missing cells, or >50%
//	           duplicate rows (reason priority in that order)
//	WARNING:   any medium severity issue, or >5% missing cells
//	READY:     otherwise
//
// Score is pure and total for any well-formed cleaned frame.
func (e *Engine) Score(f *frame.Frame, issues []model.ValidationIssue) model.ValidationSummary {
	totalRows := f.NumRows()
	totalCols := f.NumCols()

	missingCount := 0
	for r := 0; r < totalRows; r++ {
		for c := 0; c < totalCols; c++ {
			if f.Cell(r, c).IsNull() {
				missingCount++
			}
		}
	}
	missingPct := 0.0
	if totalCells := totalRows * totalCols; totalCells > 0 {
		missingPct = float64(missingCount) / float64(totalCells) * 100
	}

	duplicateCount := countDuplicates(f)
	duplicatePct := 0.0
	if totalRows > 0 {
		duplicatePct = float64(duplicateCount) / float64(totalRows) * 100
	}

	highSeverity, mediumSeverity := 0, 0
	for _, issue := range issues {
		switch issue.Severity {
		case model.SeverityHigh:
			highSeverity++
		case model.SeverityMedium:
			mediumSeverity++
		}
	}

	var status model.Status
	var reason string
	switch {
	case highSeverity > 0 || missingPct > 20 || duplicatePct > 50:
		status = model.StatusNotReady
		switch {
		case highSeverity > 0:
			reason = fmt.Sprintf("Data has %d high severity issues that need attention.", highSeverity)
		case missingPct > 20:
			reason = fmt.Sprintf("Data has %.1f%% missing values (>20%% threshold).", missingPct)
		default:
			reason = fmt.Sprintf("Data has %.1f%% duplicate rows (>50%% threshold).", duplicatePct)
		}
	case mediumSeverity > 0 || missingPct > 5:
		status = model.StatusWarning
		if mediumSeverity > 0 {
			reason = fmt.Sprintf("Data has %d medium severity issues. Review recommended.", mediumSeverity)
		} else {
			reason = fmt.Sprintf("Data has %.1f%% missing values. Consider handling them.", missingPct)
		}
	default:
		status = model.StatusReady
		reason = "Data quality is good. Ready for analysis."
	}

	return model.ValidationSummary{
		TotalRows:         totalRows,
		TotalColumns:      totalCols,
		MissingValueCount: missingCount,
		DuplicateRowCount: duplicateCount,
		IssueCount:        len(issues),
		Status:            status,
		StatusReason:      reason,
	}
}

func countDuplicates(f *frame.Frame) int {
	seen := make(map[string]struct{}, f.NumRows())
	count := 0
	for r := 0; r < f.NumRows(); r++ {
		key := frame.RowFingerprint(f.Row(r))
		if _, ok := seen[key]; ok {
			count++
			continue
		}
		seen[key] = struct{}{}
	}
	return count
}

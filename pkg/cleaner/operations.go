// pkg/cleaner/operations.go
package cleaner

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tidycheck/tidycheck/pkg/classify"
	"github.com/tidycheck/tidycheck/pkg/frame"
	"github.com/tidycheck/tidycheck/pkg/model"
)

// canonicalDateLayout is the output format for canonicalized date columns.
const canonicalDateLayout = "2006-01-02"

// dateLayouts are tried in order when parsing a date-candidate column.
// Layouts with 1-digit month/day also accept the 2-digit forms.
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"1-2-2006",
	"1/2/06",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// naTokens are treated as missing during numeric coercion, after formatting
// characters have been stripped.
var naTokens = map[string]struct{}{
	"":     {},
	"nan":  {},
	"None": {},
	"null": {},
	"N/A":  {},
	"n/a":  {},
	"-":    {},
}

// numericFormatting strips thousands separators, currency symbols and
// percent signs before numeric parsing.
var numericFormatting = strings.NewReplacer(",", "", "$", "", "%", "")

// dropEmptyRows removes rows where every cell is missing.
func dropEmptyRows(rows [][]frame.Value) ([][]frame.Value, int) {
	kept := rows[:0]
	removed := 0
	for _, row := range rows {
		if rowEmpty(row) {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	return kept, removed
}

func rowEmpty(row []frame.Value) bool {
	for _, v := range row {
		if !v.IsNull() {
			return false
		}
	}
	return true
}

// dropEmptyColumns removes columns where every cell is missing and returns
// the surviving header, the narrowed rows and the dropped column names.
func dropEmptyColumns(cols []string, rows [][]frame.Value) ([]string, [][]frame.Value, []string) {
	keepIdx := make([]int, 0, len(cols))
	var dropped []string
	for idx, name := range cols {
		if columnEmpty(rows, idx) {
			dropped = append(dropped, name)
			continue
		}
		keepIdx = append(keepIdx, idx)
	}
	if len(dropped) == 0 {
		return cols, rows, nil
	}

	newCols := make([]string, len(keepIdx))
	for i, idx := range keepIdx {
		newCols[i] = cols[idx]
	}
	newRows := make([][]frame.Value, len(rows))
	for r, row := range rows {
		newRow := make([]frame.Value, len(keepIdx))
		for i, idx := range keepIdx {
			newRow[i] = row[idx]
		}
		newRows[r] = newRow
	}
	return newCols, newRows, dropped
}

func columnEmpty(rows [][]frame.Value, idx int) bool {
	for _, row := range rows {
		if !row[idx].IsNull() {
			return false
		}
	}
	return true
}

// trimWhitespace trims leading/trailing whitespace on every text cell in
// place and returns the number of cells actually changed.
func trimWhitespace(rows [][]frame.Value) int {
	changed := 0
	for _, row := range rows {
		for i, v := range row {
			if v.Kind() != frame.KindText {
				continue
			}
			trimmed := strings.TrimSpace(v.TextValue())
			if trimmed != v.TextValue() {
				row[i] = frame.Text(trimmed)
				changed++
			}
		}
	}
	return changed
}

func columnOf(rows [][]frame.Value, idx int) []frame.Value {
	col := make([]frame.Value, len(rows))
	for i, row := range rows {
		col[i] = row[idx]
	}
	return col
}

// transformColumn dispatches a column to its normalization based on the
// classifier verdict. A nil value slice means the column is unchanged.
func transformColumn(column []frame.Value, name string, verdict classify.Verdict) ([]frame.Value, []model.CleaningLogEntry) {
	switch verdict {
	case classify.VerdictNumeric:
		return scrubInfinity(column, name)
	case classify.VerdictDateCandidate:
		return convertDates(column, name)
	case classify.VerdictNumericCandidate:
		return convertNumeric(column, name)
	case classify.VerdictText:
		return normalizeText(column, name)
	default:
		// Temporal and unclassified columns pass through untouched.
		return nil, nil
	}
}

// scrubInfinity replaces ±Inf in an already-numeric column with missing.
func scrubInfinity(column []frame.Value, name string) ([]frame.Value, []model.CleaningLogEntry) {
	count := 0
	out := make([]frame.Value, len(column))
	copy(out, column)
	for i, v := range column {
		if v.Kind() == frame.KindFloat && math.IsInf(v.FloatValue(), 0) {
			out[i] = frame.Null()
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	return out, []model.CleaningLogEntry{{
		Operation:   model.OpRemoveInfinity,
		Description: fmt.Sprintf("Replaced %d infinity values with missing in column '%s'", count, name),
		Column:      name,
		Count:       count,
	}}
}

// convertDates parses a date-candidate column leniently and reformats every
// parseable value to canonical YYYY-MM-DD text. Values that were attempted
// but failed to parse become missing. If nothing in the column parses, the
// column is left unchanged and no entry is emitted.
func convertDates(column []frame.Value, name string) ([]frame.Value, []model.CleaningLogEntry) {
	converted, failed, changed := 0, 0, 0
	out := make([]frame.Value, len(column))
	for i, v := range column {
		if v.IsNull() {
			out[i] = v
			continue
		}
		if v.Kind() == frame.KindTime {
			canonical := v.TimeValue().Format(canonicalDateLayout)
			out[i] = frame.Text(canonical)
			converted++
			changed++
			continue
		}
		s := strings.TrimSpace(v.String())
		t, ok := parseDate(s)
		if !ok {
			out[i] = frame.Null()
			failed++
			changed++
			continue
		}
		converted++
		canonical := t.Format(canonicalDateLayout)
		if v.Kind() == frame.KindText && v.TextValue() == canonical {
			out[i] = v
			continue
		}
		out[i] = frame.Text(canonical)
		changed++
	}

	// Wholesale failure: keep the column as-is rather than blanking it.
	if converted == 0 {
		return nil, nil
	}
	// Already canonical: nothing happened, nothing to log.
	if changed == 0 {
		return out, nil
	}

	return out, []model.CleaningLogEntry{{
		Operation:      model.OpConvertDates,
		Description:    fmt.Sprintf("Converted column '%s' to YYYY-MM-DD format (%d values)", name, converted),
		Column:         name,
		ConvertedCount: converted,
		FailedCount:    failed,
	}}
}

// parseDate tries the lenient layout list against a trimmed string.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// convertNumeric coerces a numeric-candidate column. Formatting characters
// are stripped, NA-like tokens become missing, and anything that still fails
// to parse becomes missing.
func convertNumeric(column []frame.Value, name string) ([]frame.Value, []model.CleaningLogEntry) {
	originalNonNull := 0
	newNonNull := 0
	out := make([]frame.Value, len(column))
	for i, v := range column {
		if v.IsNull() {
			out[i] = v
			continue
		}
		originalNonNull++
		if v.Kind().IsNumeric() {
			out[i] = v
			newNonNull++
			continue
		}
		s := strings.TrimSpace(numericFormatting.Replace(v.String()))
		if _, na := naTokens[s]; na {
			out[i] = frame.Null()
			continue
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			out[i] = frame.Int(n)
			newNonNull++
			continue
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			// ParseFloat accepts "inf" and "NaN" spellings; neither is a
			// usable numeric observation, so both degrade to missing.
			if math.IsInf(f, 0) || math.IsNaN(f) {
				out[i] = frame.Null()
				continue
			}
			out[i] = frame.Float(f)
			newNonNull++
			continue
		}
		out[i] = frame.Null()
	}

	coerced := originalNonNull - newNonNull
	entry := model.CleaningLogEntry{
		Operation:   model.OpConvertToNumeric,
		Description: fmt.Sprintf("Converted column '%s' to numeric type", name),
		Column:      name,
	}
	if coerced > 0 {
		entry = model.CleaningLogEntry{
			Operation:   model.OpCoerceToNumeric,
			Description: fmt.Sprintf("Converted column '%s' to numeric (%d invalid values set to missing)", name, coerced),
			Column:      name,
			Count:       coerced,
		}
	}
	return out, []model.CleaningLogEntry{entry}
}

// normalizeText lowercases every text cell in a categorical column and
// reports how many cells actually changed.
func normalizeText(column []frame.Value, name string) ([]frame.Value, []model.CleaningLogEntry) {
	changed := 0
	out := make([]frame.Value, len(column))
	copy(out, column)
	for i, v := range column {
		if v.Kind() != frame.KindText {
			continue
		}
		lower := strings.ToLower(v.TextValue())
		if lower != v.TextValue() {
			out[i] = frame.Text(lower)
			changed++
		}
	}
	if changed == 0 {
		return nil, nil
	}
	return out, []model.CleaningLogEntry{{
		Operation:   model.OpNormalizeText,
		Description: fmt.Sprintf("Normalized text to lowercase in column '%s' (%d cells)", name, changed),
		Column:      name,
		Count:       changed,
	}}
}

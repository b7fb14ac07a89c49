// pkg/validator/validator_test.go
package validator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tidycheck/tidycheck/pkg/frame"
	"github.com/tidycheck/tidycheck/pkg/model"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(zap.NewNop())
	require.NoError(t, err)
	return e
}

func mustFrame(t *testing.T, cols []string, rows [][]frame.Value) *frame.Frame {
	t.Helper()
	f, err := frame.New(cols, rows)
	require.NoError(t, err)
	return f
}

func issuesOfType(issues []model.ValidationIssue, typ model.IssueType) []model.ValidationIssue {
	var out []model.ValidationIssue
	for _, i := range issues {
		if i.Type == typ {
			out = append(out, i)
		}
	}
	return out
}

func TestMissingValueSeverities(t *testing.T) {
	tests := []struct {
		name     string
		missing  int
		total    int
		severity model.Severity
	}{
		{name: "low below 20 percent", missing: 1, total: 10, severity: model.SeverityLow},
		{name: "medium above 20 percent", missing: 3, total: 10, severity: model.SeverityMedium},
		{name: "high above 50 percent", missing: 6, total: 10, severity: model.SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([][]frame.Value, tt.total)
			for i := range rows {
				if i < tt.missing {
					rows[i] = []frame.Value{frame.Null(), frame.Int(int64(i))}
				} else {
					rows[i] = []frame.Value{frame.Text(fmt.Sprintf("v%d", i)), frame.Int(int64(i))}
				}
			}
			f := mustFrame(t, []string{"a", "b"}, rows)

			issues := issuesOfType(newTestEngine(t).Validate(f), model.IssueMissingValue)
			require.Len(t, issues, 1)
			assert.Equal(t, "a", issues[0].ColumnName)
			assert.Equal(t, tt.severity, issues[0].Severity)
			assert.Contains(t, issues[0].Description, "missing values")
		})
	}
}

func TestMissingValueBoundaryIsStrict(t *testing.T) {
	// Exactly 20% missing stays LOW, exactly 50% stays MEDIUM.
	rows := make([][]frame.Value, 10)
	for i := range rows {
		if i < 2 {
			rows[i] = []frame.Value{frame.Null()}
		} else {
			rows[i] = []frame.Value{frame.Int(int64(i))}
		}
	}
	issues := newTestEngine(t).Validate(mustFrame(t, []string{"a"}, rows))
	require.Len(t, issuesOfType(issues, model.IssueMissingValue), 1)
	assert.Equal(t, model.SeverityLow, issues[0].Severity)

	for i := range rows {
		if i < 5 {
			rows[i] = []frame.Value{frame.Null()}
		} else {
			rows[i] = []frame.Value{frame.Int(int64(i))}
		}
	}
	issues = newTestEngine(t).Validate(mustFrame(t, []string{"a"}, rows))
	require.Len(t, issuesOfType(issues, model.IssueMissingValue), 1)
	assert.Equal(t, model.SeverityMedium, issues[0].Severity)
}

func TestDuplicateRows(t *testing.T) {
	// 10 rows, two full duplicates of the first: 20% is MEDIUM.
	rows := make([][]frame.Value, 0, 10)
	rows = append(rows, []frame.Value{frame.Text("dup"), frame.Int(1)})
	for i := 0; i < 7; i++ {
		rows = append(rows, []frame.Value{frame.Text(fmt.Sprintf("r%d", i)), frame.Int(int64(i))})
	}
	rows = append(rows, []frame.Value{frame.Text("dup"), frame.Int(1)})
	rows = append(rows, []frame.Value{frame.Text("dup"), frame.Int(1)})

	issues := issuesOfType(newTestEngine(t).Validate(mustFrame(t, []string{"a", "b"}, rows)), model.IssueDuplicateRow)
	require.Len(t, issues, 1)
	assert.Equal(t, model.SeverityMedium, issues[0].Severity)
	assert.Contains(t, issues[0].Description, "2 duplicate rows")
	assert.Contains(t, issues[0].Description, "20.0%")
	assert.Contains(t, issues[0].Description, "[8 9]")
}

func TestDuplicateRowsKindAware(t *testing.T) {
	// Int 1 and text "1" render the same but are different rows.
	rows := [][]frame.Value{
		{frame.Int(1)},
		{frame.Text("1")},
	}
	issues := issuesOfType(newTestEngine(t).Validate(mustFrame(t, []string{"a"}, rows)), model.IssueDuplicateRow)
	assert.Empty(t, issues)
}

func TestMixedTypes(t *testing.T) {
	tests := []struct {
		name   string
		column []frame.Value
		flag   bool
	}{
		{
			name:   "int float and text is mixed",
			column: []frame.Value{frame.Int(1), frame.Float(1.5), frame.Text("two")},
			flag:   true,
		},
		{
			name:   "int and float is numeric compatible",
			column: []frame.Value{frame.Int(1), frame.Float(1.5), frame.Int(2)},
			flag:   false,
		},
		{
			name:   "nulls never contribute a kind",
			column: []frame.Value{frame.Null(), frame.Text("a"), frame.Text("b")},
			flag:   false,
		},
		{
			name:   "text and bool is mixed",
			column: []frame.Value{frame.Text("yes"), frame.Bool(true), frame.Text("no")},
			flag:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([][]frame.Value, len(tt.column))
			for i, v := range tt.column {
				rows[i] = []frame.Value{v}
			}
			issues := issuesOfType(newTestEngine(t).Validate(mustFrame(t, []string{"col"}, rows)), model.IssueMixedType)
			if tt.flag {
				require.Len(t, issues, 1)
				assert.Equal(t, model.SeverityMedium, issues[0].Severity)
				assert.Contains(t, issues[0].Description, "mixed data types")
			} else {
				assert.Empty(t, issues)
			}
		})
	}
}

func TestValidateCheckOrder(t *testing.T) {
	// One frame triggering all three checks: issues arrive missing first,
	// duplicates second, mixed types last.
	rows := [][]frame.Value{
		{frame.Null(), frame.Int(1)},
		{frame.Text("a"), frame.Text("x")},
		{frame.Text("a"), frame.Text("x")},
	}
	issues := newTestEngine(t).Validate(mustFrame(t, []string{"a", "b"}, rows))
	require.Len(t, issues, 3)
	assert.Equal(t, model.IssueMissingValue, issues[0].Type)
	assert.Equal(t, model.IssueDuplicateRow, issues[1].Type)
	assert.Equal(t, model.IssueMixedType, issues[2].Type)
}

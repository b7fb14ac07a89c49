// pkg/frame/frame.go
package frame

import (
	"fmt"
	"strings"
)

// Frame is an immutable rectangular dataset: an ordered header plus rows of
// cells. Pipeline stages never mutate a frame in place; each stage builds a
// new frame from the previous one.
type Frame struct {
	cols []string
	rows [][]Value
}

// New builds a frame and enforces the rectangular invariant: every row must
// have exactly one cell per header column.
func New(cols []string, rows [][]Value) (*Frame, error) {
	for i, row := range rows {
		if len(row) != len(cols) {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", i, len(row), len(cols))
		}
	}
	return &Frame{cols: cols, rows: rows}, nil
}

// NumRows returns the row count.
func (f *Frame) NumRows() int { return len(f.rows) }

// NumCols returns the column count.
func (f *Frame) NumCols() int { return len(f.cols) }

// Columns returns a copy of the ordered column identifiers.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.cols))
	copy(out, f.cols)
	return out
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (f *Frame) ColumnIndex(name string) int {
	for i, c := range f.cols {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the cell at the given row and column position.
func (f *Frame) Cell(row, col int) Value {
	return f.rows[row][col]
}

// Row returns a copy of the row at the given position.
func (f *Frame) Row(i int) []Value {
	out := make([]Value, len(f.rows[i]))
	copy(out, f.rows[i])
	return out
}

// Column returns a copy of the cells of the column at the given position,
// in row order.
func (f *Frame) Column(idx int) []Value {
	out := make([]Value, len(f.rows))
	for i, row := range f.rows {
		out[i] = row[idx]
	}
	return out
}

// CloneRows returns a deep copy of the row data, suitable as the starting
// point for a copy-on-write stage.
func (f *Frame) CloneRows() [][]Value {
	rows := make([][]Value, len(f.rows))
	for i, row := range f.rows {
		rows[i] = make([]Value, len(row))
		copy(rows[i], row)
	}
	return rows
}

// RowFingerprint encodes a row for full-row duplicate detection. Two rows
// share a fingerprint exactly when every cell matches in kind and payload.
func RowFingerprint(row []Value) string {
	var sb strings.Builder
	for i, v := range row {
		if i > 0 {
			sb.WriteByte(0x1f)
		}
		sb.WriteString(v.Fingerprint())
	}
	return sb.String()
}

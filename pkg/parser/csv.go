// pkg/parser/csv.go
package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/tidycheck/tidycheck/pkg/frame"
	"github.com/tidycheck/tidycheck/pkg/model"
)

// ErrEmptyFile is returned when the input contains no data rows.
var ErrEmptyFile = errors.New("the uploaded file is empty or contains no data")

// ingestNullTokens are read as missing cells at ingestion time.
var ingestNullTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"NaN":  {},
	"nan":  {},
	"null": {},
	"NULL": {},
}

// ParseCSV reads a CSV document into a frame. Non-UTF-8 input falls back to
// Windows-1252, which also covers Latin-1 byte streams.
func ParseCSV(r io.Reader) (*frame.Frame, *model.DatasetMetadata, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV input: %w", err)
	}
	if !utf8.Valid(data) {
		data, err = charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decode CSV input: %w", err)
		}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV input: %w", err)
	}

	return buildFrame(records)
}

// buildFrame turns raw records (header row first) into a typed frame plus
// ingestion metadata. Short rows are padded with missing cells and long
// rows truncated so the rectangular invariant holds.
func buildFrame(records [][]string) (*frame.Frame, *model.DatasetMetadata, error) {
	if len(records) < 2 {
		return nil, nil, ErrEmptyFile
	}

	rawHeader := records[0]
	if len(rawHeader) == 0 {
		return nil, nil, ErrEmptyFile
	}
	cols, mapping := NormalizeHeaders(rawHeader)

	rows := make([][]frame.Value, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]frame.Value, len(cols))
		for i := range cols {
			if i < len(record) {
				row[i] = sniffCell(record[i])
			} else {
				row[i] = frame.Null()
			}
		}
		rows = append(rows, row)
	}

	f, err := frame.New(cols, rows)
	if err != nil {
		return nil, nil, err
	}

	originalCols := make([]string, len(rawHeader))
	copy(originalCols, rawHeader)
	meta := &model.DatasetMetadata{
		OriginalRowCount:    f.NumRows(),
		OriginalColumnCount: f.NumCols(),
		OriginalColumns:     originalCols,
		ColumnMapping:       mapping,
	}
	return f, meta, nil
}

// sniffCell types a raw string cell: missing tokens, then integer, then
// float, then boolean, falling back to text.
func sniffCell(s string) frame.Value {
	if _, null := ingestNullTokens[s]; null {
		return frame.Null()
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return frame.Int(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return frame.Float(f)
	}
	switch strings.ToLower(s) {
	case "true":
		return frame.Bool(true)
	case "false":
		return frame.Bool(false)
	}
	return frame.Text(s)
}

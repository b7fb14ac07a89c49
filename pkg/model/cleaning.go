// pkg/model/cleaning.go
package model

// OperationKind identifies a cleaning transformation.
type OperationKind string

const (
	OpRemoveEmptyRows    OperationKind = "remove_empty_rows"
	OpRemoveEmptyColumns OperationKind = "remove_empty_columns"
	OpTrimWhitespace     OperationKind = "trim_whitespace"
	OpRemoveInfinity     OperationKind = "remove_infinity"
	OpConvertDates       OperationKind = "convert_dates"
	OpCoerceToNumeric    OperationKind = "coerce_to_numeric"
	OpConvertToNumeric   OperationKind = "convert_to_numeric"
	OpNormalizeText      OperationKind = "normalize_text"
)

// CleaningLogEntry records one transformation actually applied to a dataset.
// The cleaning log is append-only and ordered by execution; stages with zero
// effect never produce an entry. Counts are kept structured so the report
// renderer and tests can inspect them without parsing the description.
type CleaningLogEntry struct {
	Operation      OperationKind `json:"operation"`
	Description    string        `json:"description"`
	Column         string        `json:"column,omitempty"`
	Count          int           `json:"count,omitempty"`
	Columns        []string      `json:"columns,omitempty"`
	ConvertedCount int           `json:"converted_count,omitempty"`
	FailedCount    int           `json:"failed_count,omitempty"`
}

// pkg/model/validation.go
package model

// Status is the aggregate readiness verdict for a dataset.
type Status string

const (
	StatusReady    Status = "ready"
	StatusWarning  Status = "warning"
	StatusNotReady Status = "not_ready"
)

// IssueType identifies the kind of a validation issue.
type IssueType string

const (
	IssueMissingValue   IssueType = "missing_value"
	IssueDuplicateRow   IssueType = "duplicate_row"
	IssueMixedType      IssueType = "mixed_type"
	IssueInvalidDate    IssueType = "invalid_date"
	IssueInvalidNumeric IssueType = "invalid_numeric"
)

// Severity is the ordinal urgency of a validation issue.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ValidationIssue describes one quality problem found in a cleaned frame.
// Row and column references are optional; frame-wide issues such as
// duplicate rows carry neither.
type ValidationIssue struct {
	RowNumber   *int      `json:"row_number,omitempty"`
	ColumnName  string    `json:"column_name,omitempty"`
	Type        IssueType `json:"issue_type"`
	Severity    Severity  `json:"severity"`
	Description string    `json:"description"`
}

// ValidationSummary aggregates validation results and dataset statistics
// into a single readiness verdict. It is recomputed fresh for every run.
type ValidationSummary struct {
	TotalRows         int    `json:"total_rows"`
	TotalColumns      int    `json:"total_columns"`
	MissingValueCount int    `json:"missing_value_count"`
	DuplicateRowCount int    `json:"duplicate_row_count"`
	IssueCount        int    `json:"issue_count"`
	Status            Status `json:"status"`
	StatusReason      string `json:"status_reason"`
}

// pkg/model/metadata.go
package model

// ColumnMapping maps a normalized column name back to the original header
// it was derived from. Normalized names are unique within a frame, so the
// mapping is a bijection.
type ColumnMapping map[string]string

// ColumnInfo summarizes one column of a processed frame for downstream
// consumers.
type ColumnInfo struct {
	Name         string        `json:"name"`
	OriginalName string        `json:"original_name"`
	Kind         string        `json:"dtype"`
	NonNullCount int           `json:"non_null_count"`
	NullCount    int           `json:"null_count"`
	UniqueCount  int           `json:"unique_count"`
	SampleValues []interface{} `json:"sample_values"`
}

// DatasetMetadata describes the dataset as it was ingested, before any
// cleaning took place.
type DatasetMetadata struct {
	OriginalFilename    string        `json:"original_filename,omitempty"`
	FileType            string        `json:"file_type,omitempty"`
	OriginalRowCount    int           `json:"original_row_count"`
	OriginalColumnCount int           `json:"original_column_count"`
	OriginalColumns     []string      `json:"original_columns"`
	ColumnMapping       ColumnMapping `json:"column_mapping"`
}

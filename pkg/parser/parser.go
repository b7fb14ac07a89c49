// pkg/parser/parser.go

// Package parser turns uploaded tabular documents into frames and maps raw
// column headers to stable, machine-safe identifiers.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidycheck/tidycheck/pkg/frame"
	"github.com/tidycheck/tidycheck/pkg/model"
)

// ParseFile parses a CSV or Excel file into a frame, dispatching on the
// file extension.
func ParseFile(path string) (*frame.Frame, *model.DatasetMetadata, error) {
	ext := strings.ToLower(filepath.Ext(path))

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var f *frame.Frame
	var meta *model.DatasetMetadata
	switch ext {
	case ".csv":
		f, meta, err = ParseCSV(file)
	case ".xlsx", ".xls":
		f, meta, err = ParseExcel(file)
	default:
		return nil, nil, fmt.Errorf("unsupported file format: %s", ext)
	}
	if err != nil {
		return nil, nil, err
	}

	meta.OriginalFilename = filepath.Base(path)
	meta.FileType = ext
	return f, meta, nil
}

// pkg/parser/excel.go
package parser

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tidycheck/tidycheck/pkg/frame"
	"github.com/tidycheck/tidycheck/pkg/model"
)

// ParseExcel reads the first sheet of an Excel workbook into a frame.
func ParseExcel(r io.Reader) (*frame.Frame, *model.DatasetMetadata, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrEmptyFile
	}

	records, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return buildFrame(records)
}

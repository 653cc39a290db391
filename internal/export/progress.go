// Package export renders stored records as Excel workbooks for teachers.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/sakif/monkey-intelligence/internal/model"
)

// ContentType is the MIME type of an .xlsx workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const progressSheet = "Progress"

var progressHeader = []string{"ID", "Game", "Score", "Completed At"}

// ProgressWorkbook builds a single-sheet workbook with one row per record,
// in the order given. The caller must Close the returned file.
func ProgressWorkbook(records []model.GameProgress) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", progressSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("export: rename sheet: %w", err)
	}

	for col, h := range progressHeader {
		if err := setCell(f, col+1, 1, h); err != nil {
			f.Close()
			return nil, err
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(progressSheet, "A1", "D1", bold)
	}

	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 22}) // m/d/yy h:mm
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("export: date style: %w", err)
	}

	for i, p := range records {
		row := i + 2
		values := []any{p.ID, p.GameType, p.Score, p.CompletedAt}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				f.Close()
				return nil, err
			}
		}
		cell, _ := excelize.CoordinatesToCellName(4, row)
		_ = f.SetCellStyle(progressSheet, cell, cell, dateStyle)
	}

	_ = f.SetColWidth(progressSheet, "B", "B", 16)
	_ = f.SetColWidth(progressSheet, "D", "D", 20)
	if len(records) > 0 {
		_ = f.AutoFilter(progressSheet, "A1:D1", nil)
	}

	return f, nil
}

// WriteProgress streams the workbook for records to w.
func WriteProgress(w io.Writer, records []model.GameProgress) error {
	f, err := ProgressWorkbook(records)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("export: cell name: %w", err)
	}
	if err := f.SetCellValue(progressSheet, cell, v); err != nil {
		return fmt.Errorf("export: set cell %s: %w", cell, err)
	}
	return nil
}

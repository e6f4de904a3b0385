// Package excel exports aggregate views as an Excel workbook
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"olymstats/domain/views"
	"olymstats/internal/errors"
	"olymstats/ports"
)

// Exporter writes views into one workbook, one sheet per view
type Exporter struct {
	path string
}

// NewExporter creates an exporter targeting the given .xlsx path
func NewExporter(path string) *Exporter {
	return &Exporter{path: path}
}

var _ ports.ViewExporter = (*Exporter)(nil)

// Export builds the workbook and saves it. Sheet names follow view names,
// truncated to the 31-character sheet name limit.
func (e *Exporter) Export(vs []views.View) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, v := range vs {
		sheet := sheetName(v.ViewName())
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return errors.Wrapf(err, "rename sheet for view %s", v.ViewName())
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return errors.Wrapf(err, "create sheet for view %s", v.ViewName())
			}
		}
		if err := writeSheet(f, sheet, v); err != nil {
			return errors.Wrapf(err, "write sheet for view %s", v.ViewName())
		}
	}

	if err := f.SaveAs(e.path); err != nil {
		return errors.Wrapf(err, "save workbook %s", e.path)
	}
	return nil
}

func sheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}

func writeSheet(f *excelize.File, sheet string, v views.View) error {
	switch view := v.(type) {
	case views.Summary:
		if err := writeRow(f, sheet, 1, "Key", "Value"); err != nil {
			return err
		}
		for i, field := range view.Fields {
			if err := writeRow(f, sheet, i+2, field.Key, field.Value); err != nil {
				return err
			}
		}
	case views.Series:
		if err := writeRow(f, sheet, 1, "Key", view.Measure); err != nil {
			return err
		}
		for i, p := range view.Points {
			if err := writeRow(f, sheet, i+2, p.Key, p.Value); err != nil {
				return err
			}
		}
	case views.Grid:
		header := make([]interface{}, 0, len(view.Columns)+1)
		header = append(header, view.KeyLabel)
		for _, col := range view.Columns {
			header = append(header, col)
		}
		if err := writeRow(f, sheet, 1, header...); err != nil {
			return err
		}
		for i, row := range view.Rows {
			cells := make([]interface{}, 0, len(view.Columns)+1)
			cells = append(cells, row.Key)
			for _, col := range view.Columns {
				cells = append(cells, row.Cell(col))
			}
			if err := writeRow(f, sheet, i+2, cells...); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported view kind %s", v.ViewKind())
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, cells ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

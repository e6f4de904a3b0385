package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"olymstats/domain/views"
	"olymstats/internal/errors"
	"olymstats/ports"
)

// Writer exports views as one CSV file per view in a target directory
type Writer struct {
	dir string
}

// NewWriter creates a writer targeting the given directory
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

var _ ports.ViewExporter = (*Writer)(nil)

// Export writes each view to <dir>/<view name>.csv, creating the directory
// if needed
func (w *Writer) Export(vs []views.View) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return errors.Wrapf(err, "create output directory %s", w.dir)
	}
	for _, v := range vs {
		path := filepath.Join(w.dir, v.ViewName()+".csv")
		if err := w.writeView(path, v); err != nil {
			return errors.Wrapf(err, "export view %s", v.ViewName())
		}
	}
	return nil
}

func (w *Writer) writeView(path string, v views.View) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := writeRecords(cw, v); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func writeRecords(cw *csv.Writer, v views.View) error {
	switch view := v.(type) {
	case views.Summary:
		if err := cw.Write([]string{"Key", "Value"}); err != nil {
			return err
		}
		for _, f := range view.Fields {
			if err := cw.Write([]string{f.Key, formatNumber(f.Value)}); err != nil {
				return err
			}
		}
	case views.Series:
		if err := cw.Write([]string{"Key", view.Measure}); err != nil {
			return err
		}
		for _, p := range view.Points {
			if err := cw.Write([]string{p.Key, formatNumber(p.Value)}); err != nil {
				return err
			}
		}
	case views.Grid:
		header := append([]string{view.KeyLabel}, view.Columns...)
		if err := cw.Write(header); err != nil {
			return err
		}
		for _, row := range view.Rows {
			record := make([]string, 0, len(header))
			record = append(record, row.Key)
			for _, col := range view.Columns {
				record = append(record, formatNumber(row.Cell(col)))
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported view kind %s", v.ViewKind())
	}
	return nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

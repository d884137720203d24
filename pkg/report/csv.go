package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mkadlec/stockwatch/pkg/inventory"
)

// CSVWriter writes the report as <prefix>_<YYYYMMDD>.csv with the
// same columns as the spreadsheet writer.
type CSVWriter struct {
	dir    string
	prefix string
}

// NewCSVWriter creates a writer that places reports in dir.
func NewCSVWriter(dir, prefix string) *CSVWriter {
	return &CSVWriter{dir: dir, prefix: prefix}
}

func (w *CSVWriter) Write(records []inventory.DiffRecord) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}
	path := filepath.Join(w.dir, fmt.Sprintf("%s_%s.csv", w.prefix, time.Now().Format("20060102")))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(columns); err != nil {
		f.Close()
		return "", fmt.Errorf("write report header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(rowStrings(r)); err != nil {
			f.Close()
			return "", fmt.Errorf("write report row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return "", fmt.Errorf("flush report: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	return path, nil
}

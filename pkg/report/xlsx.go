package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mkadlec/stockwatch/pkg/inventory"
)

const sheetName = "Inventory"

// XLSXWriter writes the report as a spreadsheet named
// <prefix>_<YYYYMMDD>.xlsx in the target directory.
type XLSXWriter struct {
	dir    string
	prefix string
}

// NewXLSXWriter creates a writer that places reports in dir.
func NewXLSXWriter(dir, prefix string) *XLSXWriter {
	return &XLSXWriter{dir: dir, prefix: prefix}
}

func (w *XLSXWriter) Write(records []inventory.DiffRecord) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}
	path := filepath.Join(w.dir, fmt.Sprintf("%s_%s.xlsx", w.prefix, time.Now().Format("20060102")))

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", fmt.Errorf("rename report sheet: %w", err)
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return "", fmt.Errorf("write report header: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("report cell: %w", err)
		}
		row := []any{r.SKU, r.Name, r.GroupID, r.CurrentStock, r.PreviousStock, r.Change, string(r.Status), string(r.CurrentTier)}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return "", fmt.Errorf("write report row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return path, nil
}

package tracked

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mkadlec/stockwatch/pkg/inventory"
)

// XLSXSource reads tracked SKUs from one column of a spreadsheet.
// The first row is treated as a header and the column is located by
// a case-insensitive name match.
type XLSXSource struct {
	path   string
	sheet  string
	column string
}

// NewXLSXSource creates a source for the given workbook. An empty
// sheet name selects the first sheet, an empty column name defaults
// to "SKU".
func NewXLSXSource(path, sheet, column string) *XLSXSource {
	if column == "" {
		column = "SKU"
	}
	return &XLSXSource{path: path, sheet: sheet, column: column}
}

// Load reads the workbook and returns the normalized SKU set. Blank
// cells are skipped and duplicates collapse. A missing file, sheet or
// column surfaces as a *ConfigError.
func (s *XLSXSource) Load() (map[string]struct{}, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, &ConfigError{Path: s.path, Err: err}
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &ConfigError{Path: s.path, Err: errors.New("workbook has no sheets")}
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &ConfigError{Path: s.path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &ConfigError{Path: s.path, Err: fmt.Errorf("sheet %q is empty", sheet)}
	}

	col := -1
	for i, header := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(header), s.column) {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, &ConfigError{Path: s.path, Err: fmt.Errorf("sheet %q has no %q column", sheet, s.column)}
	}

	skus := make(map[string]struct{})
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		sku := inventory.NormalizeSKU(row[col])
		if sku == "" {
			continue
		}
		skus[sku] = struct{}{}
	}
	return skus, nil
}

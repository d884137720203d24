package report_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mkadlec/stockwatch/pkg/inventory"
	"github.com/mkadlec/stockwatch/pkg/report"
)

func sampleRecords() []inventory.DiffRecord {
	return []inventory.DiffRecord{
		{
			SKU: "AB-101", Name: "Travel Cot", GroupID: "12",
			CurrentStock: 8, PreviousStock: 15, Change: -7,
			Status: inventory.StatusSold, CurrentTier: inventory.TierCritical,
		},
		{
			SKU: "CD-202", Name: "High Chair", GroupID: "7",
			CurrentStock: 18, PreviousStock: 18, Change: 0,
			Status: inventory.StatusUnchanged, CurrentTier: inventory.TierWarning,
		},
	}
}

func TestXLSXWriter_Write(t *testing.T) {
	dir := t.TempDir()
	w := report.NewXLSXWriter(dir, "INVENTORY")

	path, err := w.Write(sampleRecords())
	require.NoError(t, err)

	wantName := "INVENTORY_" + time.Now().Format("20060102") + ".xlsx"
	assert.Equal(t, filepath.Join(dir, wantName), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Inventory"}, f.GetSheetList())

	rows, err := f.GetRows("Inventory")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"SKU", "Product", "Group ID", "Current Stock",
		"Previous Stock", "Change", "Status", "Alert Level",
	}, rows[0])
	assert.Equal(t, []string{"AB-101", "Travel Cot", "12", "8", "15", "-7", "SOLD", "CRITICAL"}, rows[1])
	assert.Equal(t, []string{"CD-202", "High Chair", "7", "18", "18", "0", "UNCHANGED", "WARNING"}, rows[2])
}

func TestXLSXWriter_PreservesRecordOrder(t *testing.T) {
	w := report.NewXLSXWriter(t.TempDir(), "INVENTORY")

	records := []inventory.DiffRecord{
		{SKU: "FIRST", CurrentTier: inventory.TierOK},
		{SKU: "SECOND", CurrentTier: inventory.TierCritical},
	}
	path, err := w.Write(records)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Inventory")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "FIRST", rows[1][0])
	assert.Equal(t, "SECOND", rows[2][0])
}

func TestXLSXWriter_EmptyRecords(t *testing.T) {
	w := report.NewXLSXWriter(t.TempDir(), "INVENTORY")

	path, err := w.Write(nil)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Inventory")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestXLSXWriter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "out")
	w := report.NewXLSXWriter(dir, "INVENTORY")

	path, err := w.Write(sampleRecords())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

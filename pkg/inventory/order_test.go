package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkadlec/stockwatch/pkg/inventory"
)

func TestSortBySeverity_CriticalFirst(t *testing.T) {
	records := []inventory.DiffRecord{
		{SKU: "OK1", CurrentTier: inventory.TierOK},
		{SKU: "W1", CurrentTier: inventory.TierWarning},
		{SKU: "C1", CurrentTier: inventory.TierCritical},
	}

	inventory.SortBySeverity(records)

	assert.Equal(t, "C1", records[0].SKU)
	assert.Equal(t, "W1", records[1].SKU)
	assert.Equal(t, "OK1", records[2].SKU)
}

func TestSortBySeverity_StableWithinTier(t *testing.T) {
	records := []inventory.DiffRecord{
		{SKU: "C1", CurrentTier: inventory.TierCritical},
		{SKU: "OK1", CurrentTier: inventory.TierOK},
		{SKU: "C2", CurrentTier: inventory.TierCritical},
		{SKU: "OK2", CurrentTier: inventory.TierOK},
		{SKU: "C3", CurrentTier: inventory.TierCritical},
	}

	inventory.SortBySeverity(records)

	require.Len(t, records, 5)
	assert.Equal(t, "C1", records[0].SKU)
	assert.Equal(t, "C2", records[1].SKU)
	assert.Equal(t, "C3", records[2].SKU)
	assert.Equal(t, "OK1", records[3].SKU)
	assert.Equal(t, "OK2", records[4].SKU)
}

func TestSortBySeverity_UnknownTierSortsLast(t *testing.T) {
	records := []inventory.DiffRecord{
		{SKU: "X", CurrentTier: inventory.Tier("MYSTERY")},
		{SKU: "OK1", CurrentTier: inventory.TierOK},
	}

	inventory.SortBySeverity(records)

	assert.Equal(t, "OK1", records[0].SKU)
	assert.Equal(t, "X", records[1].SKU)
}

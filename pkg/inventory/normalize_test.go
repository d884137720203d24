package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkadlec/stockwatch/pkg/inventory"
)

func TestNormalizeSKU(t *testing.T) {
	assert.Equal(t, "ABC-123", inventory.NormalizeSKU("  abc-123 "))
	assert.Equal(t, "XYZ", inventory.NormalizeSKU("xyz"))
	assert.Equal(t, "", inventory.NormalizeSKU("   "))
}

func TestNormalize_ParsesStock(t *testing.T) {
	obs := inventory.Normalize(inventory.RawEntry{
		Identifier: " ab-1 ",
		Stock:      " 42 ",
		Name:       " Widget ",
		Group:      " 7 ",
	})

	assert.Equal(t, "AB-1", obs.SKU)
	assert.Equal(t, 42, obs.Stock)
	assert.Equal(t, "Widget", obs.Name)
	assert.Equal(t, "7", obs.GroupID)
}

func TestNormalize_UnparsableStockIsZero(t *testing.T) {
	obs := inventory.Normalize(inventory.RawEntry{Identifier: "A", Stock: "lots"})
	assert.Equal(t, 0, obs.Stock)

	obs = inventory.Normalize(inventory.RawEntry{Identifier: "A", Stock: ""})
	assert.Equal(t, 0, obs.Stock)
}

func TestNormalize_NegativeStockClampedToZero(t *testing.T) {
	obs := inventory.Normalize(inventory.RawEntry{Identifier: "A", Stock: "-3"})
	assert.Equal(t, 0, obs.Stock)
}

func TestNormalize_MissingNameBecomesUnknown(t *testing.T) {
	obs := inventory.Normalize(inventory.RawEntry{Identifier: "A", Stock: "1", Name: "  "})
	assert.Equal(t, "Unknown", obs.Name)
}

func TestFilterTracked_KeepsFeedOrder(t *testing.T) {
	obs := []inventory.Observation{
		{SKU: "C", Stock: 3},
		{SKU: "A", Stock: 1},
		{SKU: "B", Stock: 2},
	}
	tracked := map[string]struct{}{"A": {}, "C": {}}

	got := inventory.FilterTracked(obs, tracked)

	assert.Len(t, got, 2)
	assert.Equal(t, "C", got[0].SKU)
	assert.Equal(t, "A", got[1].SKU)
}

func TestFilterTracked_EmptyIntersection(t *testing.T) {
	obs := []inventory.Observation{{SKU: "A"}}
	got := inventory.FilterTracked(obs, map[string]struct{}{"Z": {}})
	assert.Empty(t, got)
}

func TestSnapshotFrom_LastDuplicateWins(t *testing.T) {
	obs := []inventory.Observation{
		{SKU: "A", Stock: 5},
		{SKU: "B", Stock: 9},
		{SKU: "A", Stock: 2},
	}

	snap := inventory.SnapshotFrom(obs)

	assert.Equal(t, map[string]int{"A": 2, "B": 9}, snap)
}

package inventory

import "sort"

// SortBySeverity reorders records in place so the most urgent tiers
// come first: CRITICAL, then WARNING, then OK. The sort is stable, so
// records in the same tier keep their feed order.
func SortBySeverity(records []DiffRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CurrentTier.Rank() < records[j].CurrentTier.Rank()
	})
}

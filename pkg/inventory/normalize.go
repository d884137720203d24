package inventory

import (
	"strconv"
	"strings"
)

// NormalizeSKU canonicalizes a SKU for matching: surrounding
// whitespace is stripped and the identifier is upper-cased. Feed
// entries and tracked lists must both pass through this so that
// casing or padding differences never cause a missed match.
func NormalizeSKU(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Normalize converts a raw feed entry into a clean observation.
// Stock text that does not parse as an integer counts as zero, and
// negative readings are clamped to zero. A missing product name
// becomes "Unknown" so downstream output always has something to show.
func Normalize(raw RawEntry) Observation {
	stock, err := strconv.Atoi(strings.TrimSpace(raw.Stock))
	if err != nil || stock < 0 {
		stock = 0
	}

	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = "Unknown"
	}

	return Observation{
		SKU:     NormalizeSKU(raw.Identifier),
		Stock:   stock,
		Name:    name,
		GroupID: strings.TrimSpace(raw.Group),
	}
}

// FilterTracked keeps only the observations whose SKU appears in the
// tracked set, preserving feed order. SKUs in both inputs are assumed
// to already be normalized.
func FilterTracked(obs []Observation, tracked map[string]struct{}) []Observation {
	matched := make([]Observation, 0, len(obs))
	for _, o := range obs {
		if _, ok := tracked[o.SKU]; ok {
			matched = append(matched, o)
		}
	}
	return matched
}

// SnapshotFrom collapses observations into the SKU to stock map that
// gets persisted for the next run. When a SKU appears more than once
// the last observation wins.
func SnapshotFrom(obs []Observation) map[string]int {
	snap := make(map[string]int, len(obs))
	for _, o := range obs {
		snap[o.SKU] = o.Stock
	}
	return snap
}

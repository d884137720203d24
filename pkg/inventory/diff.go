package inventory

// Diff compares current observations against the previous snapshot
// and produces one record per observation, in input order. A SKU
// absent from the snapshot is treated as if its previous stock were
// the current stock, so first-seen SKUs report no change and never
// trigger a tier entry.
func Diff(obs []Observation, prev map[string]int, t Thresholds) []DiffRecord {
	records := make([]DiffRecord, 0, len(obs))
	for _, o := range obs {
		prevStock, seen := prev[o.SKU]
		if !seen {
			prevStock = o.Stock
		}

		change := o.Stock - prevStock
		status := StatusUnchanged
		switch {
		case change > 0:
			status = StatusRestocked
		case change < 0:
			status = StatusSold
		}

		currentTier := Classify(o.Stock, t)
		previousTier := Classify(prevStock, t)

		records = append(records, DiffRecord{
			SKU:           o.SKU,
			Name:          o.Name,
			GroupID:       o.GroupID,
			CurrentStock:  o.Stock,
			PreviousStock: prevStock,
			Change:        change,
			Status:        status,
			CurrentTier:   currentTier,
			PreviousTier:  previousTier,
			NewTierEntry:  enteredTier(currentTier, previousTier),
		})
	}
	return records
}

// enteredTier reports whether the move from previous to current tier
// is a fresh alarm. Entering CRITICAL from anywhere else alarms.
// Entering WARNING alarms only from OK; a SKU recovering from
// CRITICAL to WARNING was already alerted at the more severe level.
func enteredTier(current, previous Tier) bool {
	switch current {
	case TierCritical:
		return previous != TierCritical
	case TierWarning:
		return previous != TierWarning && previous != TierCritical
	default:
		return false
	}
}

// SplitNewEntries picks out the records that newly entered an alert
// tier this run, split by severity. Input order is preserved within
// each group.
func SplitNewEntries(records []DiffRecord) (newCritical, newWarning []DiffRecord) {
	for _, r := range records {
		if !r.NewTierEntry {
			continue
		}
		switch r.CurrentTier {
		case TierCritical:
			newCritical = append(newCritical, r)
		case TierWarning:
			newWarning = append(newWarning, r)
		}
	}
	return newCritical, newWarning
}

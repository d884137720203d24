package inventory

// Classify assigns an alert tier to a stock level. Both thresholds
// are inclusive: stock at exactly the critical threshold is CRITICAL,
// stock at exactly the warning threshold is WARNING. When the two
// thresholds are equal the warning band is empty.
func Classify(stock int, t Thresholds) Tier {
	switch {
	case stock <= t.Critical:
		return TierCritical
	case stock <= t.Warning:
		return TierWarning
	default:
		return TierOK
	}
}

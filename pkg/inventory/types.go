package inventory

// RawEntry is a single product row as it appears in a supplier feed,
// before any cleanup. All fields are the raw text content of the
// corresponding feed elements.
type RawEntry struct {
	Identifier string
	Stock      string
	Name       string
	Group      string
}

// Observation is a cleaned-up stock reading for one SKU.
type Observation struct {
	SKU     string
	Stock   int
	Name    string
	GroupID string
}

// Tier is the alert severity assigned to a stock level.
type Tier string

const (
	TierCritical Tier = "CRITICAL"
	TierWarning  Tier = "WARNING"
	TierOK       Tier = "OK"
)

// Rank returns the sort weight of a tier. Lower ranks sort first so
// reports lead with the most urgent items. Unknown tiers sort last.
func (t Tier) Rank() int {
	switch t {
	case TierCritical:
		return 0
	case TierWarning:
		return 1
	case TierOK:
		return 2
	default:
		return 3
	}
}

// ChangeStatus describes how a SKU's stock moved between two runs.
type ChangeStatus string

const (
	StatusRestocked ChangeStatus = "RESTOCKED"
	StatusSold      ChangeStatus = "SOLD"
	StatusUnchanged ChangeStatus = "UNCHANGED"
)

// Thresholds holds the stock levels at or below which a SKU is
// considered critical or warning. Warning is expected to be greater
// than or equal to critical.
type Thresholds struct {
	Critical int
	Warning  int
}

// DiffRecord is the full comparison result for one tracked SKU:
// the current observation, the previous stock level, and the alert
// transition between the two runs.
type DiffRecord struct {
	SKU           string
	Name          string
	GroupID       string
	CurrentStock  int
	PreviousStock int
	Change        int
	Status        ChangeStatus
	CurrentTier   Tier
	PreviousTier  Tier
	NewTierEntry  bool
}

// Package report renders ordered diff records into a dated tabular
// file that can be attached to notifications.
package report

import (
	"strconv"

	"github.com/mkadlec/stockwatch/pkg/inventory"
)

// Writer renders diff records into a file and returns its path. The
// records are written in the order given; callers sort beforehand.
type Writer interface {
	Write(records []inventory.DiffRecord) (string, error)
}

var columns = []string{
	"SKU",
	"Product",
	"Group ID",
	"Current Stock",
	"Previous Stock",
	"Change",
	"Status",
	"Alert Level",
}

func rowStrings(r inventory.DiffRecord) []string {
	return []string{
		r.SKU,
		r.Name,
		r.GroupID,
		strconv.Itoa(r.CurrentStock),
		strconv.Itoa(r.PreviousStock),
		strconv.Itoa(r.Change),
		string(r.Status),
		string(r.CurrentTier),
	}
}

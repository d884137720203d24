package alerts

import (
	"fmt"
	"strings"
	"time"

	"github.com/mkadlec/stockwatch/pkg/inventory"
)

// BuildLowStock renders the notification for SKUs that newly entered
// an alert tier this run. It returns nil when both groups are empty:
// items that merely remain low were already announced and stay quiet.
func BuildLowStock(newCritical, newWarning []inventory.DiffRecord, th inventory.Thresholds, reportPath string, date time.Time) *Notification {
	if len(newCritical) == 0 && len(newWarning) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "NEW low stock items detected on %s:\n\n", date.Format("20060102"))

	if len(newCritical) > 0 {
		fmt.Fprintf(&b, "CRITICAL (<= %d):\n", th.Critical)
		for _, r := range newCritical {
			fmt.Fprintf(&b, "- SKU: %s | %s | Stock: %d\n", r.SKU, r.Name, r.CurrentStock)
		}
		b.WriteString("\n")
	}

	if len(newWarning) > 0 {
		fmt.Fprintf(&b, "WARNING (<= %d):\n", th.Warning)
		for _, r := range newWarning {
			fmt.Fprintf(&b, "- SKU: %s | %s | Stock: %d\n", r.SKU, r.Name, r.CurrentStock)
		}
	}

	fmt.Fprintf(&b, "\nFull report attached: %s", reportPath)

	return &Notification{
		Subject:     fmt.Sprintf("LOW STOCK ALERT - %d CRITICAL, %d WARNING", len(newCritical), len(newWarning)),
		Body:        b.String(),
		ReportPath:  reportPath,
		NewCritical: toLines(newCritical),
		NewWarning:  toLines(newWarning),
	}
}

func toLines(records []inventory.DiffRecord) []Line {
	out := make([]Line, 0, len(records))
	for _, r := range records {
		out = append(out, Line{SKU: r.SKU, Name: r.Name, Stock: r.CurrentStock})
	}
	return out
}

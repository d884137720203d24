package alerts

import "context"

// Line is one SKU called out in a notification.
type Line struct {
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// Notification is a fully rendered low stock alert: human-readable
// subject and body plus the structured fields machine channels use.
type Notification struct {
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	ReportPath  string `json:"report_path,omitempty"`
	RunID       string `json:"run_id,omitempty"`
	NewCritical []Line `json:"new_critical"`
	NewWarning  []Line `json:"new_warning"`
}

// Notifier sends notifications to external systems.
type Notifier interface {
	// Name returns the notifier identifier.
	Name() string

	// Send delivers a notification. Implementations must be safe for concurrent use.
	Send(ctx context.Context, n Notification) error
}

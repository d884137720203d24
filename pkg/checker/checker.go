// Package checker runs the low stock check end to end: pull the
// supplier feed, diff tracked SKUs against the previous snapshot,
// write the report, persist the new baseline and fan out alerts.
package checker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mkadlec/stockwatch/pkg/alerts"
	"github.com/mkadlec/stockwatch/pkg/feed"
	"github.com/mkadlec/stockwatch/pkg/inventory"
	"github.com/mkadlec/stockwatch/pkg/report"
	"github.com/mkadlec/stockwatch/pkg/snapshot"
	"github.com/mkadlec/stockwatch/pkg/tracked"
)

// ErrEmptyIntersection means the feed parsed fine but none of the
// tracked SKUs appeared in it. The run aborts before the snapshot
// write: overwriting a good baseline with nothing would make the
// next run treat every SKU as first-seen and swallow its alerts.
var ErrEmptyIntersection = errors.New("no tracked SKUs matched the feed")

// Params collects the collaborators of a Checker.
type Params struct {
	Feed       feed.Source
	Tracked    tracked.Source
	Snapshots  snapshot.Store
	Report     report.Writer
	Notifiers  []alerts.Notifier
	Thresholds inventory.Thresholds
	Logger     *slog.Logger
	DryRun     bool
}

// Checker executes one batch run per Run call. It holds no state
// between runs; the snapshot store is the only baseline.
type Checker struct {
	feed       feed.Source
	tracked    tracked.Source
	snapshots  snapshot.Store
	report     report.Writer
	notifiers  []alerts.Notifier
	thresholds inventory.Thresholds
	logger     *slog.Logger
	dryRun     bool
}

// New creates a checker from its collaborators.
func New(p Params) *Checker {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{
		feed:       p.Feed,
		tracked:    p.Tracked,
		snapshots:  p.Snapshots,
		report:     p.Report,
		notifiers:  p.Notifiers,
		thresholds: p.Thresholds,
		logger:     logger,
		dryRun:     p.DryRun,
	}
}

// Result summarizes one completed run.
type Result struct {
	RunID         string
	Parsed        int
	Tracked       int
	Matched       int
	Records       []inventory.DiffRecord
	NewCritical   []inventory.DiffRecord
	NewWarning    []inventory.DiffRecord
	ReportPath    string
	SnapshotSaved bool
	Notified      bool
}

// Run performs one check. Fetch, tracked list, snapshot and report
// failures abort the run; notifier failures are logged and do not,
// because by then the report exists and the baseline is saved. In
// dry run mode the report is still written but the snapshot and the
// notifiers are left untouched.
func (c *Checker) Run(ctx context.Context) (*Result, error) {
	runID := uuid.New().String()
	logger := c.logger.With("run_id", runID)

	logger.Info("fetching feed")
	raw, err := c.feed.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	observations := make([]inventory.Observation, 0, len(raw))
	for _, entry := range raw {
		observations = append(observations, inventory.Normalize(entry))
	}
	logger.Info("feed parsed", "products", len(observations))

	trackedSet, err := c.tracked.Load()
	if err != nil {
		return nil, err
	}

	matched := inventory.FilterTracked(observations, trackedSet)
	if len(matched) == 0 {
		return nil, ErrEmptyIntersection
	}
	logger.Info("tracked SKUs matched", "tracked", len(trackedSet), "matched", len(matched))

	prev, err := c.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}

	records := inventory.Diff(matched, prev, c.thresholds)
	newCritical, newWarning := inventory.SplitNewEntries(records)
	inventory.SortBySeverity(records)

	reportPath, err := c.report.Write(records)
	if err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	logger.Info("report written", "path", reportPath, "rows", len(records),
		"new_critical", len(newCritical), "new_warning", len(newWarning))

	result := &Result{
		RunID:       runID,
		Parsed:      len(observations),
		Tracked:     len(trackedSet),
		Matched:     len(matched),
		Records:     records,
		NewCritical: newCritical,
		NewWarning:  newWarning,
		ReportPath:  reportPath,
	}

	if c.dryRun {
		logger.Info("dry run, snapshot and notifications skipped")
		return result, nil
	}

	if err := c.snapshots.Save(ctx, inventory.SnapshotFrom(matched)); err != nil {
		return nil, err
	}
	result.SnapshotSaved = true

	notification := alerts.BuildLowStock(newCritical, newWarning, c.thresholds, reportPath, time.Now())
	if notification == nil {
		logger.Info("no new low stock entries")
		return result, nil
	}
	notification.RunID = runID

	logger.Warn("new low stock entries",
		"new_critical", len(newCritical),
		"new_warning", len(newWarning),
	)

	for _, n := range c.notifiers {
		if err := n.Send(ctx, *notification); err != nil {
			logger.Error("notification failed", "notifier", n.Name(), "error", err)
			continue
		}
		logger.Info("notification sent", "notifier", n.Name())
		result.Notified = true
	}

	return result, nil
}

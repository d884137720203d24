package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mkadlec/stockwatch/internal/config"
	"github.com/mkadlec/stockwatch/pkg/alerts"
	"github.com/mkadlec/stockwatch/pkg/checker"
	"github.com/mkadlec/stockwatch/pkg/feed"
	"github.com/mkadlec/stockwatch/pkg/inventory"
	"github.com/mkadlec/stockwatch/pkg/report"
	"github.com/mkadlec/stockwatch/pkg/snapshot"
	"github.com/mkadlec/stockwatch/pkg/tracked"
)

// Version is set at build time via ldflags.
var Version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "stockwatch",
	Short: "Stockwatch - supplier feed low-stock monitoring and alerting",
	Long: `Stockwatch polls a supplier XML feed, diffs stock levels for tracked
SKUs against the previous run, and alerts when an item newly drops to a
warning or critical level. Every run writes a full inventory report and
stores the stock snapshot used as the next run's baseline.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./stockwatch.yaml)")
}

// loadConfig loads .env files and the configuration.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger creates a structured logger from config.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.Logging.Format == "text" {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}

// initFeed creates the feed source from config.
func initFeed(cfg *config.Config) (feed.Source, error) {
	profile := feed.DefaultProfile()
	if cfg.Feed.Profile != "" {
		p, err := feed.LoadProfile(cfg.Feed.Profile)
		if err != nil {
			return nil, err
		}
		profile = p
	}
	return feed.NewHTTPSource(cfg.Feed.URL, profile, cfg.FeedTimeout()), nil
}

// initTracked creates the tracked SKU list source from config.
func initTracked(cfg *config.Config) tracked.Source {
	return tracked.NewXLSXSource(cfg.Tracked.Path, cfg.Tracked.Sheet, cfg.Tracked.Column)
}

// initStore creates a snapshot store from config.
func initStore(cfg *config.Config) (snapshot.Store, error) {
	if cfg.Snapshot.Driver == "sqlite" {
		return snapshot.NewSQLiteStore(cfg.Snapshot.Path)
	}
	return snapshot.NewFileStore(cfg.Snapshot.Path), nil
}

// initReporter creates a report writer from config.
func initReporter(cfg *config.Config) report.Writer {
	if cfg.Report.Format == "csv" {
		return report.NewCSVWriter(cfg.Report.Dir, cfg.Report.Prefix)
	}
	return report.NewXLSXWriter(cfg.Report.Dir, cfg.Report.Prefix)
}

// initNotifiers creates alert notifiers from config.
func initNotifiers(cfg *config.Config) []alerts.Notifier {
	var notifiers []alerts.Notifier

	recipients := cfg.SMTP.RecipientList()
	if cfg.SMTP.Username != "" && cfg.SMTP.Password != "" && len(recipients) > 0 {
		notifiers = append(notifiers, alerts.NewEmailNotifier(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Username,
			cfg.SMTP.Password,
			cfg.SMTP.From,
			recipients,
		))
	}

	if cfg.Alerts.Slack.Enabled && cfg.Alerts.Slack.WebhookURL != "" {
		notifiers = append(notifiers, alerts.NewSlackNotifier(
			cfg.Alerts.Slack.WebhookURL,
			cfg.Alerts.Slack.Channel,
		))
	}

	if cfg.Alerts.Webhook.Enabled && cfg.Alerts.Webhook.URL != "" {
		notifiers = append(notifiers, alerts.NewWebhookNotifier(
			cfg.Alerts.Webhook.URL,
			cfg.Alerts.Webhook.Secret,
		))
	}

	return notifiers
}

// initChecker creates a fully wired checker. The caller must close the
// returned store.
func initChecker(cfg *config.Config, dryRun bool) (*checker.Checker, snapshot.Store, error) {
	source, err := initFeed(cfg)
	if err != nil {
		return nil, nil, err
	}

	store, err := initStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	c := checker.New(checker.Params{
		Feed:      source,
		Tracked:   initTracked(cfg),
		Snapshots: store,
		Report:    initReporter(cfg),
		Notifiers: initNotifiers(cfg),
		Thresholds: inventory.Thresholds{
			Critical: cfg.Thresholds.Critical,
			Warning:  cfg.Thresholds.Warning,
		},
		Logger: newLogger(cfg),
		DryRun: dryRun,
	})

	return c, store, nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all stockwatch configuration.
type Config struct {
	Feed       FeedConfig       `mapstructure:"feed"`
	Tracked    TrackedConfig    `mapstructure:"tracked"`
	Thresholds ThresholdsConfig `mapstructure:"thresholds"`
	Snapshot   SnapshotConfig   `mapstructure:"snapshot"`
	Report     ReportConfig     `mapstructure:"report"`
	SMTP       SMTPConfig       `mapstructure:"smtp"`
	Alerts     AlertsConfig     `mapstructure:"alerts"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// FeedConfig defines the supplier feed source.
type FeedConfig struct {
	URL     string `mapstructure:"url"`
	Timeout string `mapstructure:"timeout"`
	Profile string `mapstructure:"profile"`
}

// TrackedConfig defines where the tracked SKU list lives.
type TrackedConfig struct {
	Path   string `mapstructure:"path"`
	Sheet  string `mapstructure:"sheet"`
	Column string `mapstructure:"column"`
}

// ThresholdsConfig defines the stock levels that trigger alerts.
type ThresholdsConfig struct {
	Critical int `mapstructure:"critical"`
	Warning  int `mapstructure:"warning"`
}

// SnapshotConfig defines how the previous-run baseline is persisted.
type SnapshotConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

// ReportConfig defines report output settings.
type ReportConfig struct {
	Dir    string `mapstructure:"dir"`
	Prefix string `mapstructure:"prefix"`
	Format string `mapstructure:"format"`
}

// SMTPConfig defines email delivery settings. Recipients is a
// comma-separated list so it can be set from a single env variable.
type SMTPConfig struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password"`
	From       string `mapstructure:"from"`
	Recipients string `mapstructure:"recipients"`
}

// AlertsConfig defines alert channels beyond email.
type AlertsConfig struct {
	Slack   SlackConfig   `mapstructure:"slack"`
	Webhook WebhookConfig `mapstructure:"webhook"`
}

// SlackConfig defines Slack webhook settings.
type SlackConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	WebhookURL string `mapstructure:"webhook_url"`
	Channel    string `mapstructure:"channel"`
}

// WebhookConfig defines generic webhook settings.
type WebhookConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	Secret  string `mapstructure:"secret"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("find home directory: %w", err)
		}

		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(home, ".stockwatch"))
		v.SetConfigName("stockwatch")
		v.SetConfigType("yaml")
	}

	// Defaults. Every key needs one so env-only settings survive Unmarshal.
	v.SetDefault("feed.url", "https://velkoobchod.carero.cz/feed/Eshop-rychle_cz.aspx")
	v.SetDefault("feed.timeout", "30s")
	v.SetDefault("feed.profile", "")
	v.SetDefault("tracked.path", "my_skus.xlsx")
	v.SetDefault("tracked.sheet", "")
	v.SetDefault("tracked.column", "SKU")
	v.SetDefault("thresholds.critical", 10)
	v.SetDefault("thresholds.warning", 20)
	v.SetDefault("snapshot.driver", "csv")
	v.SetDefault("snapshot.path", "inventory_previous.csv")
	v.SetDefault("report.dir", ".")
	v.SetDefault("report.prefix", "CARERO_INVENTORY")
	v.SetDefault("report.format", "xlsx")
	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "")
	v.SetDefault("smtp.recipients", "")
	v.SetDefault("alerts.slack.enabled", false)
	v.SetDefault("alerts.slack.webhook_url", "")
	v.SetDefault("alerts.slack.channel", "#stock-alerts")
	v.SetDefault("alerts.webhook.enabled", false)
	v.SetDefault("alerts.webhook.url", "")
	v.SetDefault("alerts.webhook.secret", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Environment variables
	v.SetEnvPrefix("STOCKWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the settings that would otherwise fail deep inside
// a run.
func (c *Config) Validate() error {
	if c.Feed.URL == "" {
		return fmt.Errorf("feed: url is required")
	}
	if c.Thresholds.Critical < 0 {
		return fmt.Errorf("thresholds: critical (%d) must not be negative", c.Thresholds.Critical)
	}
	if c.Thresholds.Warning < c.Thresholds.Critical {
		return fmt.Errorf("thresholds: warning (%d) must be at least critical (%d)",
			c.Thresholds.Warning, c.Thresholds.Critical)
	}
	switch c.Snapshot.Driver {
	case "csv", "sqlite":
	default:
		return fmt.Errorf("snapshot: unknown driver %q (expected csv or sqlite)", c.Snapshot.Driver)
	}
	switch c.Report.Format {
	case "xlsx", "csv":
	default:
		return fmt.Errorf("report: unknown format %q (expected xlsx or csv)", c.Report.Format)
	}
	return nil
}

// FeedTimeout parses the feed timeout, falling back to 30 seconds on
// anything unparsable.
func (c *Config) FeedTimeout() time.Duration {
	d, err := time.ParseDuration(c.Feed.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// RecipientList splits the comma-separated recipients, dropping
// blanks.
func (s *SMTPConfig) RecipientList() []string {
	var out []string
	for _, r := range strings.Split(s.Recipients, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Feed     FeedConfig     `toml:"feed"`
	Refresh  RefreshConfig  `toml:"refresh"`
	Sections SectionsConfig `toml:"sections"`
	Logging  LoggingConfig  `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// FeedConfig contains the upstream artifact feed settings. The feed is the
// static location (e.g. a published docs/data folder) where the report job
// drops portfolios.json, sentiment.json, metadata.json, news.json and
// performance_chart.png.
type FeedConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// RefreshConfig contains auto-refresh scheduler settings. The gate hours are
// local wall-clock hours; the scheduler arms only when started on a weekday
// with the hour in [OpenHour, CloseHour).
type RefreshConfig struct {
	IntervalMinutes int `toml:"interval_minutes"`
	OpenHour        int `toml:"open_hour"`
	CloseHour       int `toml:"close_hour"`
}

// SectionsConfig is the dashboard capability set. The news section and the
// per-portfolio start date line are optional and selected here rather than
// by maintaining divergent dashboard builds.
type SectionsConfig struct {
	News               bool `toml:"news"`
	PortfolioStartDate bool `toml:"portfolio_start_date"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies CLAW_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("CLAW_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("CLAW_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if feedURL := os.Getenv("CLAW_FEED_URL"); feedURL != "" {
		config.Feed.BaseURL = feedURL
	}
	if interval := os.Getenv("CLAW_REFRESH_INTERVAL"); interval != "" {
		if m, err := strconv.Atoi(interval); err == nil {
			config.Refresh.IntervalMinutes = m
		}
	}
	if news := os.Getenv("CLAW_SECTIONS_NEWS"); news != "" {
		config.Sections.News = parseBool(news, config.Sections.News)
	}
	if startDate := os.Getenv("CLAW_SECTIONS_START_DATE"); startDate != "" {
		config.Sections.PortfolioStartDate = parseBool(startDate, config.Sections.PortfolioStartDate)
	}
	if level := os.Getenv("CLAW_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// parseBool interprets common boolean spellings, falling back on failure.
func parseBool(s string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return fallback
	}
	return v
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host, feedURL string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
	if feedURL != "" {
		config.Feed.BaseURL = feedURL
	}
}

// Validate checks mandatory configuration and returns a list of issues.
// An empty list means the configuration is usable.
func (c *Config) Validate() []string {
	var issues []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server.port must be between 1 and 65535 (got %d)", c.Server.Port))
	}
	if c.Feed.BaseURL == "" {
		issues = append(issues, "feed.base_url is required (where the report job publishes its data files)")
	} else if u, err := url.Parse(c.Feed.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		issues = append(issues, fmt.Sprintf("feed.base_url must be an absolute URL (got %q)", c.Feed.BaseURL))
	}
	if c.Refresh.IntervalMinutes <= 0 {
		issues = append(issues, fmt.Sprintf("refresh.interval_minutes must be positive (got %d)", c.Refresh.IntervalMinutes))
	}
	if c.Refresh.OpenHour < 0 || c.Refresh.OpenHour > 23 {
		issues = append(issues, fmt.Sprintf("refresh.open_hour must be a wall-clock hour (got %d)", c.Refresh.OpenHour))
	}
	if c.Refresh.CloseHour <= c.Refresh.OpenHour || c.Refresh.CloseHour > 24 {
		issues = append(issues, fmt.Sprintf("refresh.close_hour must be after open_hour and at most 24 (got %d)", c.Refresh.CloseHour))
	}

	return issues
}

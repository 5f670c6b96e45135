package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Port != 4261 {
		t.Errorf("expected default port 4261, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("expected default host localhost, got %s", cfg.Server.Host)
	}
	if cfg.Refresh.IntervalMinutes != 5 {
		t.Errorf("expected default refresh interval 5, got %d", cfg.Refresh.IntervalMinutes)
	}
	if cfg.Refresh.OpenHour != 9 || cfg.Refresh.CloseHour != 17 {
		t.Errorf("expected default gate hours 9-17, got %d-%d", cfg.Refresh.OpenHour, cfg.Refresh.CloseHour)
	}
	if !cfg.Sections.News {
		t.Error("expected news section enabled by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFiles_NoFiles(t *testing.T) {
	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles with no files should not error: %v", err)
	}
	if cfg.Server.Port != 4261 {
		t.Errorf("expected default port 4261, got %d", cfg.Server.Port)
	}
}

func TestLoadFromFiles_ValidTOML(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "test.toml")

	content := `
[server]
port = 9090
host = "0.0.0.0"

[feed]
base_url = "https://bigclaw.example.com/data"
timeout_seconds = 5

[sections]
news = false
portfolio_start_date = false

[logging]
level = "debug"
`
	if err := os.WriteFile(tomlPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFiles(tomlPath)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected host 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Feed.BaseURL != "https://bigclaw.example.com/data" {
		t.Errorf("unexpected feed base url: %s", cfg.Feed.BaseURL)
	}
	if cfg.Sections.News {
		t.Error("expected news section disabled")
	}
	if cfg.Sections.PortfolioStartDate {
		t.Error("expected start date line disabled")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFiles_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "partial.toml")

	// Only override port; everything else should stay default
	content := `
[server]
port = 3000
`
	if err := os.WriteFile(tomlPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFiles(tomlPath)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("expected port 3000, got %d", cfg.Server.Port)
	}
	if cfg.Refresh.IntervalMinutes != 5 {
		t.Errorf("expected default refresh interval preserved, got %d", cfg.Refresh.IntervalMinutes)
	}
	if !cfg.Sections.News {
		t.Error("expected default news capability preserved")
	}
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles("/nonexistent/claw-portal.toml")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CLAW_SERVER_PORT", "8181")
	t.Setenv("CLAW_FEED_URL", "http://feed.internal:9000")
	t.Setenv("CLAW_SECTIONS_NEWS", "false")
	t.Setenv("CLAW_LOG_LEVEL", "warn")

	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if cfg.Server.Port != 8181 {
		t.Errorf("expected env port 8181, got %d", cfg.Server.Port)
	}
	if cfg.Feed.BaseURL != "http://feed.internal:9000" {
		t.Errorf("expected env feed url, got %s", cfg.Feed.BaseURL)
	}
	if cfg.Sections.News {
		t.Error("expected news disabled via env")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level warn, got %s", cfg.Logging.Level)
	}
}

func TestEnvOverrides_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("CLAW_SERVER_PORT", "not-a-port")
	t.Setenv("CLAW_SECTIONS_NEWS", "maybe")

	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if cfg.Server.Port != 4261 {
		t.Errorf("expected default port kept for invalid env value, got %d", cfg.Server.Port)
	}
	if !cfg.Sections.News {
		t.Error("expected default news capability kept for invalid env value")
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()

	ApplyFlagOverrides(cfg, 7070, "0.0.0.0", "http://flags.example.com")

	if cfg.Server.Port != 7070 {
		t.Errorf("expected flag port 7070, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected flag host 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Feed.BaseURL != "http://flags.example.com" {
		t.Errorf("expected flag feed url, got %s", cfg.Feed.BaseURL)
	}
}

func TestApplyFlagOverrides_ZeroValuesIgnored(t *testing.T) {
	cfg := NewDefaultConfig()

	ApplyFlagOverrides(cfg, 0, "", "")

	if cfg.Server.Port != 4261 {
		t.Errorf("expected default port preserved, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("expected default host preserved, got %s", cfg.Server.Host)
	}
}

func TestValidate_DefaultsPass(t *testing.T) {
	cfg := NewDefaultConfig()

	if issues := cfg.Validate(); len(issues) != 0 {
		t.Errorf("expected no validation issues for defaults, got %v", issues)
	}
}

func TestValidate_BadValues(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Server.Port = -1
	cfg.Feed.BaseURL = "not a url"
	cfg.Refresh.IntervalMinutes = 0
	cfg.Refresh.CloseHour = cfg.Refresh.OpenHour

	issues := cfg.Validate()
	if len(issues) != 4 {
		t.Errorf("expected 4 validation issues, got %d: %v", len(issues), issues)
	}
}

func TestValidate_MissingFeedURL(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Feed.BaseURL = ""

	issues := cfg.Validate()
	if len(issues) != 1 {
		t.Fatalf("expected 1 validation issue, got %d: %v", len(issues), issues)
	}
}

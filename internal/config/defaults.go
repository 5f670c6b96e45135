package config

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 4261,
			Host: "localhost",
		},
		Feed: FeedConfig{
			BaseURL:        "http://localhost:4262",
			TimeoutSeconds: 10,
		},
		Refresh: RefreshConfig{
			IntervalMinutes: 5,
			OpenHour:        9,
			CloseHour:       17,
		},
		Sections: SectionsConfig{
			News:               true,
			PortfolioStartDate: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Outputs: []string{"console", "file"},
		},
	}
}

/*
Copyright © 2026 insights.codes hello@insights.codes
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose   bool            `mapstructure:"verbose"`
	Config    string          `mapstructure:"config"`
	Data      DataConfig      `mapstructure:"data" validate:"required"`
	Site      SiteConfig      `mapstructure:"site" validate:"required"`
	Notify    NotifyConfig    `mapstructure:"notify" validate:"omitempty"`
	Telemetry TelemetryConfig `mapstructure:"telemetry" validate:"omitempty"`
}

// DataConfig holds the pipeline's file layout. All paths except Dir are
// relative to Dir.
type DataConfig struct {
	Dir          string `mapstructure:"dir" validate:"required"`
	InsightsFile string `mapstructure:"insightsFile" validate:"required"`
	ArchiveDir   string `mapstructure:"archiveDir" validate:"required"`
	PostsDir     string `mapstructure:"postsDir" validate:"required"`
	RulesFile    string `mapstructure:"rulesFile" validate:"omitempty"`
}

// SiteConfig holds settings of the published site the artifacts feed.
type SiteConfig struct {
	URL       string `mapstructure:"url" validate:"required,url"`
	DateRange string `mapstructure:"dateRange" validate:"required"`
}

// NotifyConfig holds subscriber notification settings.
type NotifyConfig struct {
	From string `mapstructure:"from" validate:"omitempty"`
	// APIKey is the Resend API key. Usually supplied via DEVLOG_NOTIFY_APIKEY
	// or a .env file rather than the config file.
	APIKey string `mapstructure:"apiKey" validate:"omitempty"`
	// DBFile is the SQLite subscriber database, relative to data.dir.
	DBFile string `mapstructure:"dbFile" validate:"required"`
	// NotifiedFile records slugs already announced, relative to data.dir.
	NotifiedFile string `mapstructure:"notifiedFile" validate:"required"`
}

// TelemetryConfig holds anonymous usage analytics settings. Disabled unless
// explicitly enabled and given an API key.
type TelemetryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"apiKey" validate:"omitempty"`
}

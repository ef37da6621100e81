package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port     int    `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Version  string `envconfig:"VERSION" default:"dev"`

	// Read access uses a plain API key; write access uses a service account
	// credentials file. Either may be absent, degrading that capability only.
	GoogleAPIKey          string `envconfig:"GOOGLE_API_KEY" default:""`
	GoogleCredentialsFile string `envconfig:"GOOGLE_CREDENTIALS_FILE" default:"credentials.json"`

	DefaultSpreadsheetID string `envconfig:"DEFAULT_SPREADSHEET_ID" default:"1NIpzqKR8rGTIRsO_48BD91AOjF6U6m6ilrUkG0mnJz8"`
	DefaultRange         string `envconfig:"DEFAULT_RANGE" default:"Sheet1!A1:Z100"`
	AppendRange          string `envconfig:"APPEND_RANGE" default:"Sheet1!A:F"`

	// Optional. When set, the runtime sheet configuration is persisted to
	// Postgres instead of process memory.
	DatabaseURL string `envconfig:"DATABASE_URL" default:""`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// AllowedOrigins returns the configured CORS origins as a slice.
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// Package config provides configuration loading and validation for the CLI.
//
// Configuration is assembled once at process start from a JSON file, the
// process environment, and CLI flag overrides, then passed explicitly to every
// component that needs it. Components never read ambient environment state.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Environment variable names for the required external credentials.
const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvAdzunaAppID  = "ADZUNA_APP_ID"
	EnvAdzunaAPIKey = "ADZUNA_API_KEY"
)

// EnvDatabaseURL is the optional persistence connection string.
const EnvDatabaseURL = "DATABASE_URL"

// Config represents the application configuration. All fields are optional in
// the JSON file; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Search parameters
	Role        string `json:"role,omitempty" validate:"omitempty,min=1"`
	Location    string `json:"location,omitempty" validate:"omitempty,min=1"`
	ResultCount int    `json:"num_results,omitempty" validate:"gte=0"`
	Country     string `json:"country,omitempty" validate:"omitempty,len=2"` // Adzuna country code, e.g. "us"

	// Paths
	ResumePath string `json:"resume,omitempty"` // Path to the resume PDF (optional)
	ReportPath string `json:"report,omitempty"` // Path to the per-run report file

	// Credentials
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	AdzunaAppID  string `json:"adzuna_app_id,omitempty"`
	AdzunaAPIKey string `json:"adzuna_api_key,omitempty"`

	// Behavior
	DatabaseURL string `json:"database_url,omitempty"` // Optional PostgreSQL URL for artifact persistence
	Parallel    bool   `json:"parallel,omitempty"`     // Run independent tail stages concurrently
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

// MissingCredentialsError enumerates exactly which credential names are absent.
type MissingCredentialsError struct {
	Names []string
}

func (e *MissingCredentialsError) Error() string {
	return fmt.Sprintf("missing required credentials: %s", strings.Join(e.Names, ", "))
}

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills credential fields that are still empty from the process
// environment. This is the single place ambient environment state is read.
func (c *Config) FromEnv() {
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv(EnvGeminiAPIKey)
	}
	if c.AdzunaAppID == "" {
		c.AdzunaAppID = os.Getenv(EnvAdzunaAppID)
	}
	if c.AdzunaAPIKey == "" {
		c.AdzunaAPIKey = os.Getenv(EnvAdzunaAPIKey)
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv(EnvDatabaseURL)
	}
}

// Validate checks the configuration values against their struct tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MissingCredentials returns the names of required credentials that are not
// set, in a fixed order, or nil when all are present.
func (c *Config) MissingCredentials() []string {
	var missing []string
	if c.GeminiAPIKey == "" {
		missing = append(missing, EnvGeminiAPIKey)
	}
	if c.AdzunaAppID == "" {
		missing = append(missing, EnvAdzunaAppID)
	}
	if c.AdzunaAPIKey == "" {
		missing = append(missing, EnvAdzunaAPIKey)
	}
	return missing
}

// CheckCredentials returns a *MissingCredentialsError enumerating every absent
// credential, or nil when all three are present.
func (c *Config) CheckCredentials() error {
	if missing := c.MissingCredentials(); len(missing) > 0 {
		return &MissingCredentialsError{Names: missing}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. CLI flags are applied before this, so explicit values always win.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.Country == "" {
		result.Country = defaults.Country
	}
	if result.ResumePath == "" {
		result.ResumePath = defaults.ResumePath
	}
	if result.ReportPath == "" {
		result.ReportPath = defaults.ReportPath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ResultCount == 0 {
		result.ResultCount = defaults.ResultCount
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

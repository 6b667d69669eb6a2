package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application configuration.
type Config struct {
	// DeckSourceURL is the base URL of the remote tarot card catalog.
	// When the catalog is unreachable the builtin 78-card deck is used.
	DeckSourceURL string `json:"deck_source_url"`

	// DeckTimeoutSeconds bounds each catalog HTTP request.
	DeckTimeoutSeconds int `json:"deck_timeout_seconds"`

	// NarrativeModel selects the model for the optional narrative
	// generation call. Empty disables the call entirely; sessions then
	// use the builtin templated insight.
	NarrativeModel string `json:"narrative_model,omitempty"`

	// NarrativeAPIKeyEnv names the environment variable holding the
	// narrative API key. Checked at call time, never stored in config.
	NarrativeAPIKeyEnv string `json:"narrative_api_key_env,omitempty"`

	// DBMaxOpenConns limits the maximum number of open database connections.
	// If set to 1, all database access is serialized.
	// 0 means use sql.DB default (unlimited).
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits the maximum number of idle database connections.
	// 0 means use sql.DB default. Typically set equal to DBMaxOpenConns.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DeckSourceURL:      "https://tarotapi.netlify.app/api/v1",
		DeckTimeoutSeconds: 10,
		NarrativeAPIKeyEnv: "OPENAI_API_KEY",
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.astroscan.
func Load(baseDir string) (*Config, error) {
	return loadFile(filepath.Join(baseDir, "config.json"))
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile loads configuration from a specific file path.
// Returns default config if the file doesn't exist.
func loadFile(configPath string) (*Config, error) {
	cfg, err := loadFileRaw(configPath)
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	// Scalars: overlay wins if non-zero, else base
	result.DeckSourceURL = overlay.DeckSourceURL
	if result.DeckSourceURL == "" {
		result.DeckSourceURL = base.DeckSourceURL
	}

	result.DeckTimeoutSeconds = overlay.DeckTimeoutSeconds
	if result.DeckTimeoutSeconds == 0 {
		result.DeckTimeoutSeconds = base.DeckTimeoutSeconds
	}

	result.NarrativeModel = overlay.NarrativeModel
	if result.NarrativeModel == "" {
		result.NarrativeModel = base.NarrativeModel
	}

	result.NarrativeAPIKeyEnv = overlay.NarrativeAPIKeyEnv
	if result.NarrativeAPIKeyEnv == "" {
		result.NarrativeAPIKeyEnv = base.NarrativeAPIKeyEnv
	}

	result.DBMaxOpenConns = overlay.DBMaxOpenConns
	if result.DBMaxOpenConns == 0 {
		result.DBMaxOpenConns = base.DBMaxOpenConns
	}

	result.DBMaxIdleConns = overlay.DBMaxIdleConns
	if result.DBMaxIdleConns == 0 {
		result.DBMaxIdleConns = base.DBMaxIdleConns
	}

	// Arrays: merge and deduplicate
	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

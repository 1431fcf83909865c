package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string         `toml:"environment" validate:"omitempty,oneof=development production prod"`
	Server      ServerConfig   `toml:"server"`
	Store       StoreConfig    `toml:"store"`
	Analysis    AnalysisConfig `toml:"analysis"`
	Logging     LoggingConfig  `toml:"logging"`
}

type ServerConfig struct {
	Port int    `toml:"port" validate:"gt=0,lte=65535"`
	Host string `toml:"host" validate:"required"`
}

// StoreConfig selects and configures the fundamentals source.
type StoreConfig struct {
	Type  string      `toml:"type" validate:"oneof=embedded csv eodhd"`
	CSV   CSVConfig   `toml:"csv"`
	EODHD EODHDConfig `toml:"eodhd"`
	Cache CacheConfig `toml:"cache"`
}

// CSVConfig configures the flat-file fundamentals source.
type CSVConfig struct {
	Path string `toml:"path"`
}

// EODHDConfig configures the remote fundamentals provider.
type EODHDConfig struct {
	APIKey    string `toml:"api_key"`
	BaseURL   string `toml:"base_url"`
	Exchange  string `toml:"exchange"`              // default exchange suffix for bare tickers
	Timeout   string `toml:"timeout"`               // duration string, e.g. "30s"
	RateLimit int    `toml:"rate_limit" validate:"gte=0"` // requests per second
}

// CacheConfig controls the read-through fundamentals cache.
// Successful lookups are cached for TTL; failures are never cached.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	TTL     string `toml:"ttl"` // duration string, e.g. "15m"; empty = process lifetime
}

// AnalysisConfig carries the tunable parts of the rating policy.
// Threshold values are fixed for label compatibility; only the warning-check
// subset and the report filters are user-facing.
type AnalysisConfig struct {
	// WarningChecks lists which signals count toward the warning total.
	// Valid values: earnings_quality, leverage, capital_efficiency.
	WarningChecks []string `toml:"warning_checks" validate:"dive,oneof=earnings_quality leverage capital_efficiency"`
	// MinGrowthPct filters the company list; companies whose full-period
	// revenue growth falls below it are excluded from multi-company runs.
	MinGrowthPct float64 `toml:"min_growth_pct"`
}

type LoggingConfig struct {
	Level  string   `toml:"level" validate:"omitempty,oneof=debug info warn error"`
	Output []string `toml:"output" validate:"dive,oneof=stdout console file"`
}

// NewDefaultConfig creates a configuration with default values.
// Classifier and rating thresholds are hardcoded in their packages for
// label compatibility; only user-facing settings appear in aestimo.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Store: StoreConfig{
			Type: "embedded",
			CSV: CSVConfig{
				Path: "./fundamentals.csv",
			},
			EODHD: EODHDConfig{
				BaseURL:   "https://eodhd.com/api",
				Exchange:  "NSE",
				Timeout:   "30s",
				RateLimit: 10,
			},
			Cache: CacheConfig{
				Enabled: true,
				TTL:     "15m",
			},
		},
		Analysis: AnalysisConfig{
			WarningChecks: []string{"earnings_quality", "leverage", "capital_efficiency"},
			MinGrowthPct:  0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout", "file"},
		},
	}
}

// LoadFromFile loads configuration with priority: defaults -> file -> env -> CLI.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files; later files override
// earlier files. Priority: CLI flags > environment > last file > ... > defaults.
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

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration using struct validation tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Store.Type == "csv" && c.Store.CSV.Path == "" {
		return fmt.Errorf("invalid configuration: store.csv.path is required when store.type is csv")
	}
	if c.Store.Type == "eodhd" && c.Store.EODHD.APIKey == "" {
		return fmt.Errorf("invalid configuration: store.eodhd.api_key is required when store.type is eodhd")
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("AESTIMO_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration
	if port := os.Getenv("AESTIMO_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("AESTIMO_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	// Store configuration
	if storeType := os.Getenv("AESTIMO_STORE_TYPE"); storeType != "" {
		config.Store.Type = storeType
	}
	if csvPath := os.Getenv("AESTIMO_STORE_CSV_PATH"); csvPath != "" {
		config.Store.CSV.Path = csvPath
	}
	if apiKey := os.Getenv("AESTIMO_EODHD_API_KEY"); apiKey != "" {
		config.Store.EODHD.APIKey = apiKey
	}
	if baseURL := os.Getenv("AESTIMO_EODHD_BASE_URL"); baseURL != "" {
		config.Store.EODHD.BaseURL = baseURL
	}
	if ttl := os.Getenv("AESTIMO_STORE_CACHE_TTL"); ttl != "" {
		config.Store.Cache.TTL = ttl
	}

	// Logging configuration
	if level := os.Getenv("AESTIMO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("AESTIMO_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	// Analysis configuration
	if checks := os.Getenv("AESTIMO_ANALYSIS_WARNING_CHECKS"); checks != "" {
		parsed := []string{}
		for _, c := range strings.Split(checks, ",") {
			if trimmed := strings.TrimSpace(c); trimmed != "" {
				parsed = append(parsed, trimmed)
			}
		}
		if len(parsed) > 0 {
			config.Analysis.WarningChecks = parsed
		}
	}
	if minGrowth := os.Getenv("AESTIMO_ANALYSIS_MIN_GROWTH_PCT"); minGrowth != "" {
		if g, err := strconv.ParseFloat(minGrowth, 64); err == nil {
			config.Analysis.MinGrowthPct = g
		}
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

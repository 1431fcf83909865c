package fundstore

import (
	"fmt"
	"time"

	"github.com/ternarybob/aestimo/internal/common"
	"github.com/ternarybob/aestimo/internal/eodhd"
	"github.com/ternarybob/arbor"
)

// NewStore builds the configured fundamentals store, wrapped in a TTL cache
// when caching is enabled.
func NewStore(cfg common.StoreConfig, logger arbor.ILogger) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.Type {
	case "embedded", "":
		store, err = NewEmbeddedStore()

	case "csv":
		store, err = NewCSVStore(cfg.CSV.Path)

	case "eodhd":
		store, err = newConfiguredEODHDStore(cfg.EODHD, logger)

	default:
		return nil, fmt.Errorf("unknown store type: %s", cfg.Type)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create %s store: %w", cfg.Type, err)
	}

	if cfg.Cache.Enabled {
		ttl, parseErr := time.ParseDuration(cfg.Cache.TTL)
		if parseErr != nil || ttl <= 0 {
			ttl = 15 * time.Minute
		}
		store = NewCachedStore(store, ttl)
		if logger != nil {
			logger.Debug().Str("ttl", ttl.String()).Msg("Fundamentals cache enabled")
		}
	}

	return store, nil
}

func newConfiguredEODHDStore(cfg common.EODHDConfig, logger arbor.ILogger) (Store, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api_key is required")
	}

	common.SetDefaultExchange(cfg.Exchange)

	opts := []eodhd.ClientOption{eodhd.WithLogger(logger)}
	if cfg.BaseURL != "" {
		opts = append(opts, eodhd.WithBaseURL(cfg.BaseURL))
	}
	if cfg.RateLimit > 0 {
		opts = append(opts, eodhd.WithRateLimit(cfg.RateLimit))
	}
	if cfg.Timeout != "" {
		if timeout, err := time.ParseDuration(cfg.Timeout); err == nil && timeout > 0 {
			opts = append(opts, eodhd.WithTimeout(timeout))
		}
	}

	return NewEODHDStore(eodhd.NewClient(cfg.APIKey, opts...), logger), nil
}

package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.temporal.io/sdk/client"

	"storefront-demo/internal/platform/notify"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port                 string
	PostgresDSN          string
	CatalogFile          string
	TemporalAddress      string
	TemporalNamespace    string
	TemporalDisabled     bool
	CartIdlePurgeMinutes int
	NoticeTTL            time.Duration
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:                 envDefault("PORT", "8080"),
		PostgresDSN:          strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		CatalogFile:          strings.TrimSpace(os.Getenv("CATALOG_FILE")),
		TemporalAddress:      envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace:    envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:     isTruthy(os.Getenv("TEMPORAL_DISABLED")),
		CartIdlePurgeMinutes: 30,
		NoticeTTL:            notify.DefaultTTL,
	}
	if raw := strings.TrimSpace(os.Getenv("CART_IDLE_PURGE_MINUTES")); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return Config{}, fmt.Errorf("CART_IDLE_PURGE_MINUTES must be a positive integer")
		}
		cfg.CartIdlePurgeMinutes = minutes
	}
	if raw := strings.TrimSpace(os.Getenv("NOTICE_TTL_SECONDS")); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return Config{}, fmt.Errorf("NOTICE_TTL_SECONDS must be a positive integer")
		}
		cfg.NoticeTTL = time.Duration(seconds) * time.Second
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}

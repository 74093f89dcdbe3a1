package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	ErrMissingDSN     = errors.New("DATABASE_DSN is not set")
	ErrUnknownDriver  = errors.New("unknown DB_DRIVER")
	ErrInvalidSetting = errors.New("invalid setting")
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DB       DBConfig
	HTTP     HTTPConfig
	LLM      LLMConfig
	Snapshot SnapshotConfig

	IngestBatchSize int
	LogsFolder      string
	Verbose         bool
}

type DBConfig struct {
	Driver string // postgres | sqlite
	DSN    string
}

type HTTPConfig struct {
	Addr        string
	FrontendURL string
}

// LLMConfig is empty (APIKey == "") when the assistant runs in fallback mode.
type LLMConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	RateLimit float64
	MaxTokens int
}

func (c LLMConfig) Enabled() bool { return c.APIKey != "" }

type SnapshotConfig struct {
	RefreshInterval time.Duration // 0 disables the in-memory cache
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	loadDotEnv()
	return FromEnv()
}

// LoadUnvalidated is Load without Validate, for commands that may never
// touch the database. Call Validate before connecting.
func LoadUnvalidated() *AppConfig {
	loadDotEnv()
	return readEnv()
}

func loadDotEnv() {
	if exePath, err := os.Executable(); err == nil {
		envPath := filepath.Join(filepath.Dir(exePath), ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("loaded configuration from binary directory")
		}
	}
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file in working directory, relying on environment variables")
	}
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() (*AppConfig, error) {
	cfg := readEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readEnv() *AppConfig {
	dsn := getEnv("DATABASE_DSN", "")
	if dsn == "" {
		dsn = getEnv("POSTGRES_DSN", "")
	}

	cfg := &AppConfig{
		DB: DBConfig{
			Driver: getEnv("DB_DRIVER", "postgres"),
			DSN:    dsn,
		},
		HTTP: HTTPConfig{
			Addr:        getEnv("HTTP_ADDR", ":8080"),
			FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		},
		LLM: LLMConfig{
			APIKey:    getEnv("LLM_API_KEY", ""),
			Model:     getEnv("LLM_MODEL", ""),
			BaseURL:   getEnv("LLM_BASE_URL", ""),
			RateLimit: getEnvFloat("LLM_RATE_LIMIT", 1),
			MaxTokens: getEnvInt("LLM_MAX_TOKENS", 512),
		},
		Snapshot: SnapshotConfig{
			RefreshInterval: getEnvDuration("SNAPSHOT_REFRESH_INTERVAL", 5*time.Minute),
		},
		IngestBatchSize: getEnvInt("INGEST_BATCH_SIZE", 1000),
		LogsFolder:      getEnv("LOGS_FOLDER", ""),
		Verbose:         getEnvBool("LOG_VERBOSE", false),
	}

	return cfg
}

func (c *AppConfig) Validate() error {
	switch c.DB.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.DB.Driver)
	}
	if c.DB.DSN == "" {
		return ErrMissingDSN
	}
	if c.IngestBatchSize <= 0 {
		return fmt.Errorf("%w: INGEST_BATCH_SIZE must be positive", ErrInvalidSetting)
	}
	if c.Snapshot.RefreshInterval < 0 {
		return fmt.Errorf("%w: SNAPSHOT_REFRESH_INTERVAL must not be negative", ErrInvalidSetting)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Warn().Str("key", key).Str("value", value).Msg("ignoring non-integer setting")
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Warn().Str("key", key).Str("value", value).Msg("ignoring non-numeric setting")
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go durations ("90s", "5m") and bare seconds ("300").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Warn().Str("key", key).Str("value", value).Msg("ignoring invalid duration")
	return fallback
}

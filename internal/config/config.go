package config

import (
	"os"
	"strconv"
	"sync"
)

// Config carries everything the service reads from the environment. Loaded
// once; tests build their own instances.
type Config struct {
	Port   int
	Env    string
	APIKey string

	// Tenant used when callers omit the hospital identifier.
	DefaultHospitalID string

	DB       DBConfig
	ReadDB   ReadDBConfig
	EventBus EventBusConfig

	Pagination PaginationConfig

	LogLevel string
}

type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeSecs int
	ConnMaxIdleSecs int
}

// ReadDBConfig points at the DynamoDB read model (CQRS read side).
type ReadDBConfig struct {
	Enabled bool
	Table   string
}

type EventBusConfig struct {
	Enabled           bool
	TopicGuideCreated string
	TopicGuideUpdated string
}

type PaginationConfig struct {
	DefaultLimit int
	MaxLimit     int
}

var (
	cfg  *Config
	once sync.Once
)

// Get returns the process-wide configuration, loading it on first use.
func Get() *Config {
	once.Do(func() {
		cfg = Load()
	})
	return cfg
}

// Load reads the environment into a fresh Config.
func Load() *Config {
	return &Config{
		Port:              intFromEnv("PORT", 3011),
		Env:               getenvDefault("GO_ENV", "development"),
		APIKey:            getenvDefault("API_KEY", "your-api-key-here"),
		DefaultHospitalID: getenvDefault("DEFAULT_HOSPITAL_ID", "hosp_sagrada_familia_001"),
		DB: DBConfig{
			User:            os.Getenv("DB_USER"),
			Password:        os.Getenv("DB_PASSWORD"),
			Host:            getenvDefault("DB_HOST", "127.0.0.1"),
			Port:            getenvDefault("DB_PORT", "3306"),
			Name:            getenvDefault("DB_NAME", "lazarus_guides"),
			MaxOpenConns:    intFromEnv("DB_MAX_OPEN_CONNS", 50),
			MaxIdleConns:    intFromEnv("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifeSecs: intFromEnv("DB_CONN_MAX_LIFETIME_SECONDS", 300),
			ConnMaxIdleSecs: intFromEnv("DB_CONN_MAX_IDLE_TIME_SECONDS", 60),
		},
		ReadDB: ReadDBConfig{
			Enabled: boolFromEnv("USE_READ_MODEL", true),
			Table:   getenvDefault("GUIDES_READMODEL_TABLE", "guide_summaries"),
		},
		EventBus: EventBusConfig{
			Enabled:           boolFromEnv("USE_EVENT_BUS", false),
			TopicGuideCreated: getenvDefault("TOPIC_GUIDE_CREATED", "guide.created"),
			TopicGuideUpdated: getenvDefault("TOPIC_GUIDE_UPDATED", "guide.updated"),
		},
		Pagination: PaginationConfig{
			DefaultLimit: 100,
			MaxLimit:     100,
		},
		LogLevel: getenvDefault("LOG_LEVEL", "info"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intFromEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func boolFromEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

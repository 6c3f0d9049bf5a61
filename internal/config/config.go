package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var DefaultEnvConfig *EnvConfig

type EnvConfig struct {
	// app config
	APP_PORT string
	// logger config
	LOG_FILE_PATH string
	LOG_LEVEL     string
	// store config
	STORE_DRIVER   string
	STORE_FILE_DIR string
	// database config
	DB_HOST              string
	DB_PORT              int
	DB_USER              string
	DB_PASSWORD          string
	DB_NAME              string
	DB_SSL_MODE          string
	DB_CONN_MAX_LIFETIME time.Duration
	DB_MAX_IDLE_CONNS    int
	DB_MAX_OPEN_CONNS    int
	// datastore config
	DATASTORE_PROJECT_ID string
	// mongo config
	MONGO_URI      string
	MONGO_DATABASE string
	// search index config
	ELASTIC_URL   string
	ELASTIC_INDEX string
	// attendance config
	SEED_VALUE  int64
	LATE_CUTOFF string
	// auth config
	AUTH_JWT_SECRET string
	AUTH_TOKEN_TTL  time.Duration
	// report config
	REPORT_TEMPLATE_PATH string
}

// LoadEnvConfig reads .env files (if any) and the process environment into DefaultEnvConfig.
func LoadEnvConfig(files ...string) (*EnvConfig, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	DefaultEnvConfig = &EnvConfig{
		APP_PORT:             getEnvString("APP_PORT", "8080"),
		LOG_FILE_PATH:        getEnvString("LOG_FILE_PATH", ""),
		LOG_LEVEL:            getEnvString("LOG_LEVEL", "info"),
		STORE_DRIVER:         getEnvString("STORE_DRIVER", "file"),
		STORE_FILE_DIR:       getEnvString("STORE_FILE_DIR", "data"),
		DB_HOST:              getEnvString("DB_HOST", "localhost"),
		DB_PORT:              getEnvInt("DB_PORT", 5432),
		DB_USER:              getEnvString("DB_USER", "postgres"),
		DB_PASSWORD:          getEnvString("DB_PASSWORD", "postgres"),
		DB_NAME:              getEnvString("DB_NAME", "postgres"),
		DB_SSL_MODE:          getEnvString("DB_SSL_MODE", "disable"),
		DB_CONN_MAX_LIFETIME: getEnvDuration("DB_CONN_MAX_LIFETIME", 20*time.Minute),
		DB_MAX_IDLE_CONNS:    getEnvInt("DB_MAX_IDLE_CONNS", 10),
		DB_MAX_OPEN_CONNS:    getEnvInt("DB_MAX_OPEN_CONNS", 100),
		DATASTORE_PROJECT_ID: getEnvString("DATASTORE_PROJECT_ID", ""),
		MONGO_URI:            getEnvString("MONGO_URI", "mongodb://localhost:27017"),
		MONGO_DATABASE:       getEnvString("MONGO_DATABASE", "attendance"),
		ELASTIC_URL:          getEnvString("ELASTIC_URL", ""),
		ELASTIC_INDEX:        getEnvString("ELASTIC_INDEX", "attendance_records"),
		SEED_VALUE:           getEnvInt64("SEED_VALUE", 42),
		LATE_CUTOFF:          getEnvString("LATE_CUTOFF", "09:30"),
		AUTH_JWT_SECRET:      getEnvString("AUTH_JWT_SECRET", "change-me"),
		AUTH_TOKEN_TTL:       getEnvDuration("AUTH_TOKEN_TTL", 12*time.Hour),
		REPORT_TEMPLATE_PATH: getEnvString("REPORT_TEMPLATE_PATH", ""),
	}
	return DefaultEnvConfig, nil
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		if i, err := strconv.Atoi(val); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}

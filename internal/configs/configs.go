package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type Config struct {
	AppURL                 string
	StorageDriver          string
	DatabaseDSN            string
	RedisAddr              string
	RedisKeyPrefix         string
	RateLimit              int
	ShutdownTimeoutSeconds int
	BulkTrashTimestamp     bool
	TimeZone               string
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		StorageDriver:          getEnv("STORAGE_DRIVER", DriverSQLite),
		DatabaseDSN:            getEnv("DATABASE_DSN", "todo.db"),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisKeyPrefix:         getEnv("REDIS_KEY_PREFIX", "todo:"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 10),
		BulkTrashTimestamp:     getEnvAsBool("BULK_TRASH_TIMESTAMP", false),
		TimeZone:               getEnv("TODO_TIMEZONE", "Local"),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
}

func (cfg Config) Validate() error {
	if cfg.AppURL == "" {
		return fmt.Errorf("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	switch cfg.StorageDriver {
	case DriverSQLite:
		if cfg.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN must not be empty")
		}
	case DriverRedis:
		if cfg.RedisAddr == "" {
			return fmt.Errorf("REDIS_HOST and REDIS_PORT must not be empty")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of %s, %s, %s", DriverSQLite, DriverRedis, DriverMemory)
	}
	if cfg.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Fatalf("invalid boolean value for %s", key)
		}
		return b
	}
	return defaultVal
}

package config

import (
	"log"
	"time"

	"todo-store.com/todo-store/internal/storage"
)

// NewKeyValueStore opens the backend selected by STORAGE_DRIVER. The
// returned func releases its connections.
func NewKeyValueStore(cfg Config) (storage.KeyValueStore, func()) {
	switch cfg.StorageDriver {
	case DriverRedis:
		client := NewRedisClient(cfg.RedisAddr)
		return storage.NewRedisStore(client, cfg.RedisKeyPrefix), client.Close
	case DriverMemory:
		log.Println("using in-memory storage, tasks will not survive a restart")
		return storage.NewMemoryStore(), func() {}
	default:
		db := NewDatabaseClient(cfg.DatabaseDSN)
		return storage.NewSQLiteStore(db), func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
	}
}

func (cfg Config) Location() *time.Location {
	if cfg.TimeZone == "" || cfg.TimeZone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		log.Printf("unknown TODO_TIMEZONE %q, using local time", cfg.TimeZone)
		return time.Local
	}
	return loc
}

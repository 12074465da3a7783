package config

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"todo-store.com/todo-store/internal/storage"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_HOST", "APP_PORT", "STORAGE_DRIVER", "DATABASE_DSN", "RATE_LIMIT_PER_MINUTE", "BULK_TRASH_TIMESTAMP", "TODO_TIMEZONE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.AppURL != "127.0.0.1:8080" {
		t.Errorf("AppURL = %q", cfg.AppURL)
	}
	if cfg.StorageDriver != DriverSQLite {
		t.Errorf("StorageDriver = %q, want %q", cfg.StorageDriver, DriverSQLite)
	}
	if cfg.DatabaseDSN != "todo.db" {
		t.Errorf("DatabaseDSN = %q", cfg.DatabaseDSN)
	}
	if cfg.BulkTrashTimestamp {
		t.Error("BulkTrashTimestamp should default to false")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", DriverMemory)
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
	t.Setenv("BULK_TRASH_TIMESTAMP", "true")
	t.Setenv("TODO_TIMEZONE", "UTC")

	cfg := Load()

	if cfg.AppURL != "127.0.0.1:9090" {
		t.Errorf("AppURL = %q", cfg.AppURL)
	}
	if cfg.StorageDriver != DriverMemory || cfg.RateLimit != 5 || !cfg.BulkTrashTimestamp {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Location() != time.UTC {
		t.Errorf("Location() = %v, want UTC", cfg.Location())
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		AppURL:                 "127.0.0.1:8080",
		StorageDriver:          DriverSQLite,
		DatabaseDSN:            "todo.db",
		RateLimit:              1,
		ShutdownTimeoutSeconds: 1,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() err = %v, want nil", err)
	}

	badDriver := valid
	badDriver.StorageDriver = "postgres"
	if err := badDriver.Validate(); err == nil {
		t.Error("expected error for unknown driver")
	}

	noDSN := valid
	noDSN.DatabaseDSN = ""
	if err := noDSN.Validate(); err == nil {
		t.Error("expected error for empty DSN")
	}

	badLimit := valid
	badLimit.RateLimit = 0
	if err := badLimit.Validate(); err == nil {
		t.Error("expected error for zero rate limit")
	}
}

func TestOpenDatabase_MissingKeyIsQuiet(t *testing.T) {
	var logs bytes.Buffer
	db, err := openDatabase(":memory:", &logs)
	if err != nil {
		t.Fatalf("openDatabase() err = %v", err)
	}

	_, err = storage.NewSQLiteStore(db).Get(context.Background(), "todoAppTasks")
	if !errors.Is(err, storage.ErrKeyNotFound) {
		t.Fatalf("Get() err = %v, want %v", err, storage.ErrKeyNotFound)
	}
	if logs.Len() != 0 {
		t.Fatalf("gorm logged a missing key:\n%s", logs.String())
	}
}

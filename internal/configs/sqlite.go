package config

import (
	"io"
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todo-store.com/todo-store/internal/storage"
)

func NewDatabaseClient(dsn string) *gorm.DB {
	db, err := openDatabase(dsn, os.Stdout)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	return db
}

// openDatabase opens dsn and migrates the key-value table. A missing key is
// the normal first-run state, so gorm does not log record-not-found.
func openDatabase(dsn string, logOut io.Writer) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.New(log.New(logOut, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		}),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&storage.Entry{}); err != nil {
		return nil, err
	}

	return db, nil
}

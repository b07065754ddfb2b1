package db

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"reviewboard/internal/logger"
)

// Dialect identifiers supported by the database layer.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Open connects with the dialector matching the configured driver.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DialectSQLite:
		dialector = sqlite.Open(dsn)
	case DialectPostgres, "":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("db: unsupported driver: %s", driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		// Map driver duplicate-key errors to gorm.ErrDuplicatedKey so the
		// repositories can rely on the unique index for email uniqueness.
		TranslateError: true,
	})
}

// WaitForDB pings the database until it answers or attempts run out.
// Deploys often start the app before the database is ready to accept
// connections.
func WaitForDB(conn *gorm.DB, attempts int, delay time.Duration) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}

	for i := 1; i <= attempts; i++ {
		if err = sqlDB.Ping(); err == nil {
			return nil
		}
		logger.Warn("database unavailable, retrying", "attempt", i, "error", err)
		time.Sleep(delay)
	}
	return fmt.Errorf("db: not reachable after %d attempts: %w", attempts, err)
}

// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"fmt"  // Error wrapping
	"log"  // Logger sink for gorm
	"os"   // Stdout for the gorm logger
	"time" // Slow query threshold

	"caloriq-backend/models" // User model

	"gorm.io/driver/mysql"    // MySQL driver for GORM
	"gorm.io/driver/postgres" // PostgreSQL driver for GORM
	"gorm.io/driver/sqlite"   // SQLite driver for GORM
	"gorm.io/gorm"            // GORM ORM
	"gorm.io/gorm/logger"     // GORM logger
)

// Supported DB_DRIVER values.
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Open connects to the configured database and creates the users table if it
// does not exist yet. The returned handle is shared by the whole process.
func Open(driver, dsn string) (*gorm.DB, error) {
	dialector, err := dialectorFor(driver, dsn) // Pick the driver
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{ // Open DB
		TranslateError: true, // Unique violations surface as gorm.ErrDuplicatedKey
		Logger: logger.New(
			log.New(os.Stdout, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true, // Unknown usernames are routine on login
			},
		),
	})
	if err != nil { // If error, return it
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	// Auto-migrate the User model (create table if needed)
	if err := db.AutoMigrate(&models.User{}); err != nil {
		return nil, fmt.Errorf("create users table: %w", err)
	}
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB() // Unwrap database/sql handle
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverSQLite, "":
		return sqlite.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverPostgres:
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

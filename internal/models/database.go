package models

import (
	"fmt"
	"reflect"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DB is the database connection used for persistence.
var DB *gorm.DB

// BBContext is the context key type for backend specific context values
type BBContext string

// DBContextURL is the key for the base URL the backend is reachable at
const DBContextURL BBContext = "budgetbook-url"

// Connect opens the sqlite database and migrates the schema.
func Connect(dsn string) error {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.Callback().Query().After("*").Register("budgetbook:after_query", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("budgetbook:after_create", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("budgetbook:after_update", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Delete().After("*").Register("budgetbook:after_delete", generalCallback)
	if err != nil {
		return err
	}

	err = db.AutoMigrate(Transaction{}, BudgetLimit{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	DB = db
	return nil
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

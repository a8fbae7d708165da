package database

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotFound is returned whenever a referenced property, image, or
// favorite does not exist. Every store operation signals absence this
// way; handlers translate it to 404/false/null as the route requires.
var ErrNotFound = errors.New("record not found")

// Store is the entity store for properties, property images, and
// favorites. It is constructed once and passed to handlers explicitly.
type Store struct {
	db *gorm.DB
}

// NewStore opens a PostgreSQL-backed store.
func NewStore(host, port, user, password, dbname, sslmode string) (*Store, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Test connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// NewStoreFromDB wraps an existing gorm.DB instance. Used by tests to
// run the store against in-memory sqlite.
func NewStoreFromDB(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying gorm.DB instance.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// InitSchema creates the tables, indexes, and foreign keys. Image and
// favorite rows cascade-delete with their property through the FK
// constraints, not application code.
func (s *Store) InitSchema() error {
	return s.db.AutoMigrate(
		&propertyRow{},
		&propertyImageRow{},
		&favoriteRow{},
	)
}

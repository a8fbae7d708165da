package database

import (
	"testing"
	"time"

	"property-catalog/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestStore(t *testing.T) *Store {
	// Single connection keeps the in-memory database alive across
	// queries; _foreign_keys enables the delete cascades under test.
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	store := NewStoreFromDB(db)
	require.NoError(t, store.InitSchema())
	return store
}

func testPropertyInput() models.CreatePropertyInput {
	return models.CreatePropertyInput{
		Title:        "Modern Apartment in Porto",
		Description:  "Renovated apartment in the historic center.",
		Price:        450000,
		City:         models.CityPorto,
		Address:      "Rua das Flores, Porto",
		Latitude:     41.1579,
		Longitude:    -8.6291,
		Bedrooms:     2,
		Bathrooms:    2,
		AreaSqm:      85,
		PropertyType: models.PropertyTypeApartment,
	}
}

// backdateProperty pins created_at (and updated_at) to a known moment
// so ordering assertions are deterministic.
func backdateProperty(t *testing.T, s *Store, id int64, at time.Time) {
	err := s.DB().Table("properties").Where("id = ?", id).
		Updates(map[string]interface{}{"created_at": at, "updated_at": at}).Error
	require.NoError(t, err)
}

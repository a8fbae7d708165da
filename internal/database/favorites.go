package database

import (
	"errors"

	"property-catalog/internal/models"

	"gorm.io/gorm"
)

// AddFavorite records a (session, property) association. The operation
// is idempotent: when the pair already exists the original record comes
// back unchanged, same id and created_at, and no row is written.
// Returns ErrNotFound when the property does not exist.
func (s *Store) AddFavorite(sessionID string, propertyID int64) (*models.Favorite, error) {
	var prop propertyRow
	if err := s.db.Select("id").First(&prop, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var existing favoriteRow
	err := s.db.Where("session_id = ? AND property_id = ?", sessionID, propertyID).
		First(&existing).Error
	if err == nil {
		favorite := favoriteRowToModel(&existing)
		return &favorite, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	row := favoriteRow{
		SessionID:  sessionID,
		PropertyID: propertyID,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}

	favorite := favoriteRowToModel(&row)
	return &favorite, nil
}

// RemoveFavorite deletes the matching pair if present and reports
// whether a row was deleted. Removing a pair that was never added, or
// whose property is already gone, simply returns false.
func (s *Store) RemoveFavorite(sessionID string, propertyID int64) (bool, error) {
	res := s.db.Where("session_id = ? AND property_id = ?", sessionID, propertyID).
		Delete(&favoriteRow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetFavorites returns the full property records favorited by the
// session, newest listing first.
func (s *Store) GetFavorites(sessionID string) ([]models.Property, error) {
	var rows []propertyRow
	err := s.db.Table("favorites").
		Select("properties.*").
		Joins("INNER JOIN properties ON properties.id = favorites.property_id").
		Where("favorites.session_id = ?", sessionID).
		Order("properties.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rowsToProperties(rows)
}

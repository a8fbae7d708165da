package database

import (
	"errors"

	"property-catalog/internal/models"

	"gorm.io/gorm"
)

// CreatePropertyImage attaches an image to an existing property.
// When the new image is primary, every sibling image is demoted first;
// the existence check, demotion, and insert run in one transaction so
// two images of the same property are never observably primary at once.
// Returns ErrNotFound when the property does not exist; nothing is
// written in that case.
func (s *Store) CreatePropertyImage(propertyID int64, in models.CreatePropertyImageInput) (*models.PropertyImage, error) {
	var row propertyImageRow
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var prop propertyRow
		if err := tx.Select("id").First(&prop, propertyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if in.IsPrimary {
			if err := tx.Model(&propertyImageRow{}).
				Where("property_id = ?", propertyID).
				Update("is_primary", false).Error; err != nil {
				return err
			}
		}

		row = propertyImageRow{
			PropertyID: propertyID,
			ImageURL:   in.ImageURL,
			AltText:    in.AltText,
			IsPrimary:  in.IsPrimary,
			SortOrder:  in.SortOrder,
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, err
	}

	image := imageRowToModel(&row)
	return &image, nil
}

// DeletePropertyImage removes an image. Reports whether a row existed;
// images own nothing, so nothing cascades further.
func (s *Store) DeletePropertyImage(id int64) (bool, error) {
	res := s.db.Delete(&propertyImageRow{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

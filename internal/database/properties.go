package database

import (
	"errors"
	"time"

	"property-catalog/internal/models"

	"gorm.io/gorm"
)

// CreateProperty inserts a new listing. The store assigns the id and
// both timestamps; created_at and updated_at are equal on creation.
func (s *Store) CreateProperty(in models.CreatePropertyInput) (*models.Property, error) {
	row := newPropertyRow(in, time.Now())
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return rowToProperty(&row)
}

// GetProperties returns listings matching the filter, newest first.
// A nil filter (or a filter with no set fields) imposes no constraint.
// Set fields are combined with AND; contradictory price bounds simply
// produce an empty result.
func (s *Store) GetProperties(f *models.PropertyFilters) ([]models.Property, error) {
	q := s.db.Model(&propertyRow{})

	if f != nil {
		if f.City != "" {
			q = q.Where("city = ?", string(f.City))
		}
		if f.MinPrice != nil {
			q = q.Where("price >= ?", formatDecimal(*f.MinPrice, priceScale))
		}
		if f.MaxPrice != nil {
			q = q.Where("price <= ?", formatDecimal(*f.MaxPrice, priceScale))
		}
		if f.Bedrooms != nil {
			q = q.Where("bedrooms = ?", *f.Bedrooms)
		}
		if f.PropertyType != "" {
			q = q.Where("property_type = ?", string(f.PropertyType))
		}
		if f.IsFeatured != nil {
			q = q.Where("is_featured = ?", *f.IsFeatured)
		}
	}

	var rows []propertyRow
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rowsToProperties(rows)
}

// GetFeaturedProperties returns the promoted listings, newest first.
func (s *Store) GetFeaturedProperties() ([]models.Property, error) {
	featured := true
	return s.GetProperties(&models.PropertyFilters{IsFeatured: &featured})
}

// GetPropertyByID returns a property together with its images ordered
// by sort_order (ties broken by insertion order). A property with no
// images carries an empty slice. Returns ErrNotFound when the id does
// not exist.
func (s *Store) GetPropertyByID(id int64) (*models.PropertyWithImages, error) {
	var row propertyRow
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var imageRows []propertyImageRow
	if err := s.db.Where("property_id = ?", id).
		Order("sort_order ASC, id ASC").
		Find(&imageRows).Error; err != nil {
		return nil, err
	}

	property, err := rowToProperty(&row)
	if err != nil {
		return nil, err
	}

	images := make([]models.PropertyImage, 0, len(imageRows))
	for i := range imageRows {
		images = append(images, imageRowToModel(&imageRows[i]))
	}

	return &models.PropertyWithImages{
		Property: *property,
		Images:   images,
	}, nil
}

// UpdateProperty applies the provided fields to an existing listing and
// refreshes updated_at regardless of which fields changed. Returns
// ErrNotFound when the id does not exist.
func (s *Store) UpdateProperty(id int64, in models.UpdatePropertyInput) (*models.Property, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		updates["price"] = formatDecimal(*in.Price, priceScale)
	}
	if in.City != nil {
		updates["city"] = string(*in.City)
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if in.Latitude != nil {
		updates["latitude"] = formatDecimal(*in.Latitude, coordScale)
	}
	if in.Longitude != nil {
		updates["longitude"] = formatDecimal(*in.Longitude, coordScale)
	}
	if in.Bedrooms != nil {
		updates["bedrooms"] = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		updates["bathrooms"] = *in.Bathrooms
	}
	if in.AreaSqm != nil {
		updates["area_sqm"] = formatDecimal(*in.AreaSqm, areaScale)
	}
	if in.PropertyType != nil {
		updates["property_type"] = string(*in.PropertyType)
	}
	if in.IsFeatured != nil {
		updates["is_featured"] = *in.IsFeatured
	}

	res := s.db.Model(&propertyRow{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var row propertyRow
	if err := s.db.First(&row, id).Error; err != nil {
		return nil, err
	}
	return rowToProperty(&row)
}

// DeleteProperty removes a listing. Its images and favorite
// associations go with it through the FK cascade. Reports whether a
// row existed.
func (s *Store) DeleteProperty(id int64) (bool, error) {
	res := s.db.Delete(&propertyRow{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

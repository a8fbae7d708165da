package database

import (
	"time"

	"property-catalog/internal/models"
)

// propertyRow is the persisted shape of a property. Price, coordinates,
// and area are text-backed numeric columns; conversion to and from the
// public model happens through formatDecimal/parseDecimal.
type propertyRow struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Title        string    `gorm:"type:text;not null"`
	Description  string    `gorm:"type:text;not null"`
	Price        string    `gorm:"type:decimal(12,2);not null;index"`
	City         string    `gorm:"type:varchar(20);not null;index"`
	Address      string    `gorm:"type:text;not null"`
	Latitude     string    `gorm:"type:decimal(10,8);not null"`
	Longitude    string    `gorm:"type:decimal(11,8);not null"`
	Bedrooms     int       `gorm:"not null;index"`
	Bathrooms    int       `gorm:"not null"`
	AreaSqm      string    `gorm:"type:decimal(8,2);not null"`
	PropertyType string    `gorm:"type:varchar(20);not null;index"`
	IsFeatured   bool      `gorm:"not null;default:false;index"`
	CreatedAt    time.Time `gorm:"not null;index:idx_properties_created_at,sort:desc"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (propertyRow) TableName() string {
	return "properties"
}

type propertyImageRow struct {
	ID         int64        `gorm:"primaryKey;autoIncrement"`
	PropertyID int64        `gorm:"not null;index"`
	Property   *propertyRow `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	ImageURL   string       `gorm:"type:text;not null"`
	AltText    string       `gorm:"type:text;not null"`
	IsPrimary  bool         `gorm:"not null;default:false"`
	SortOrder  int          `gorm:"not null;default:0;index"`
	CreatedAt  time.Time    `gorm:"autoCreateTime"`
}

func (propertyImageRow) TableName() string {
	return "property_images"
}

type favoriteRow struct {
	ID         int64        `gorm:"primaryKey;autoIncrement"`
	SessionID  string       `gorm:"type:varchar(128);not null;uniqueIndex:idx_favorites_session_property"`
	PropertyID int64        `gorm:"not null;index;uniqueIndex:idx_favorites_session_property"`
	Property   *propertyRow `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time    `gorm:"autoCreateTime"`
}

func (favoriteRow) TableName() string {
	return "favorites"
}

func newPropertyRow(in models.CreatePropertyInput, now time.Time) propertyRow {
	return propertyRow{
		Title:        in.Title,
		Description:  in.Description,
		Price:        formatDecimal(in.Price, priceScale),
		City:         string(in.City),
		Address:      in.Address,
		Latitude:     formatDecimal(in.Latitude, coordScale),
		Longitude:    formatDecimal(in.Longitude, coordScale),
		Bedrooms:     in.Bedrooms,
		Bathrooms:    in.Bathrooms,
		AreaSqm:      formatDecimal(in.AreaSqm, areaScale),
		PropertyType: string(in.PropertyType),
		IsFeatured:   in.IsFeatured,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func rowToProperty(row *propertyRow) (*models.Property, error) {
	price, err := parseDecimal(row.Price)
	if err != nil {
		return nil, err
	}
	lat, err := parseDecimal(row.Latitude)
	if err != nil {
		return nil, err
	}
	lon, err := parseDecimal(row.Longitude)
	if err != nil {
		return nil, err
	}
	area, err := parseDecimal(row.AreaSqm)
	if err != nil {
		return nil, err
	}

	return &models.Property{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		Price:        price,
		City:         models.City(row.City),
		Address:      row.Address,
		Latitude:     lat,
		Longitude:    lon,
		Bedrooms:     row.Bedrooms,
		Bathrooms:    row.Bathrooms,
		AreaSqm:      area,
		PropertyType: models.PropertyType(row.PropertyType),
		IsFeatured:   row.IsFeatured,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

func rowsToProperties(rows []propertyRow) ([]models.Property, error) {
	properties := make([]models.Property, 0, len(rows))
	for i := range rows {
		p, err := rowToProperty(&rows[i])
		if err != nil {
			return nil, err
		}
		properties = append(properties, *p)
	}
	return properties, nil
}

func imageRowToModel(row *propertyImageRow) models.PropertyImage {
	return models.PropertyImage{
		ID:         row.ID,
		PropertyID: row.PropertyID,
		ImageURL:   row.ImageURL,
		AltText:    row.AltText,
		IsPrimary:  row.IsPrimary,
		SortOrder:  row.SortOrder,
		CreatedAt:  row.CreatedAt,
	}
}

func favoriteRowToModel(row *favoriteRow) models.Favorite {
	return models.Favorite{
		ID:         row.ID,
		SessionID:  row.SessionID,
		PropertyID: row.PropertyID,
		CreatedAt:  row.CreatedAt,
	}
}

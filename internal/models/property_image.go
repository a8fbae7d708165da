package models

import "time"

// PropertyImage is one of a property's pictures. Images belong to
// exactly one property and are destroyed with it. At most one image per
// property carries IsPrimary; the store's write path maintains that.
type PropertyImage struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"property_id"`
	ImageURL   string    `json:"image_url"`
	AltText    string    `json:"alt_text"`
	IsPrimary  bool      `json:"is_primary"`
	SortOrder  int       `json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreatePropertyImageInput carries the fields for attaching an image to
// a property. The owning property id comes from the route.
type CreatePropertyImageInput struct {
	ImageURL  string `json:"image_url" binding:"required,url"`
	AltText   string `json:"alt_text"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

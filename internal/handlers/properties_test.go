package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"property-catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProperties(t *testing.T) {
	r, store := setupTestRouter(t)

	seedProperty(t, store, nil)
	seedProperty(t, store, func(in *models.CreatePropertyInput) {
		in.City = models.CityLisbon
		in.PropertyType = models.PropertyTypeVilla
		in.Price = 1250000
		in.IsFeatured = true
	})

	w := doRequest(t, r, http.MethodGet, "/api/properties", "")
	require.Equal(t, http.StatusOK, w.Code)

	var properties []models.Property
	decodeJSON(t, w, &properties)
	assert.Len(t, properties, 2)
}

func TestListProperties_QueryFilters(t *testing.T) {
	r, store := setupTestRouter(t)

	porto := seedProperty(t, store, nil)
	lisbon := seedProperty(t, store, func(in *models.CreatePropertyInput) {
		in.City = models.CityLisbon
		in.Price = 1250000
		in.IsFeatured = true
	})

	cases := []struct {
		query  string
		wantID int64
	}{
		{"city=porto", porto.ID},
		{"min_price=1000000", lisbon.ID},
		{"max_price=500000", porto.ID},
		{"is_featured=true", lisbon.ID},
		{"is_featured=false", porto.ID},
		{"city=lisbon&min_price=1000000&is_featured=true", lisbon.ID},
	}
	for _, tc := range cases {
		w := doRequest(t, r, http.MethodGet, "/api/properties?"+tc.query, "")
		require.Equal(t, http.StatusOK, w.Code, tc.query)

		var properties []models.Property
		decodeJSON(t, w, &properties)
		require.Len(t, properties, 1, tc.query)
		assert.Equal(t, tc.wantID, properties[0].ID, tc.query)
	}
}

func TestListProperties_UnknownCity(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/properties?city=madrid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPropertyByID_WithImages(t *testing.T) {
	r, store := setupTestRouter(t)

	property := seedProperty(t, store, nil)
	_, err := store.CreatePropertyImage(property.ID, models.CreatePropertyImageInput{
		ImageURL:  "https://example.com/1.jpg",
		IsPrimary: true,
	})
	require.NoError(t, err)

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/properties/%d", property.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	var detail models.PropertyWithImages
	decodeJSON(t, w, &detail)
	assert.Equal(t, property.ID, detail.ID)
	require.Len(t, detail.Images, 1)
	assert.True(t, detail.Images[0].IsPrimary)
}

func TestGetPropertyByID_NotFound(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/properties/9999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProperty(t *testing.T) {
	r, _ := setupTestRouter(t)

	body := `{
		"title": "Beachfront Apartment",
		"description": "Direct beach access.",
		"price": 680000,
		"city": "algarve",
		"address": "Praia da Rocha",
		"latitude": 37.1174,
		"longitude": -8.5391,
		"bedrooms": 3,
		"bathrooms": 2,
		"area_sqm": 120,
		"property_type": "apartment"
	}`
	w := doRequest(t, r, http.MethodPost, "/api/properties", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var property models.Property
	decodeJSON(t, w, &property)
	assert.NotZero(t, property.ID)
	assert.Equal(t, 680000.0, property.Price)
	assert.False(t, property.IsFeatured)
}

func TestCreateProperty_RejectsInvalidInput(t *testing.T) {
	r, _ := setupTestRouter(t)

	// Unknown city
	body := `{
		"title": "x", "description": "x", "price": 100, "city": "madrid",
		"address": "x", "latitude": 0, "longitude": 0,
		"bedrooms": 1, "bathrooms": 1, "area_sqm": 10, "property_type": "house"
	}`
	w := doRequest(t, r, http.MethodPost, "/api/properties", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Latitude out of range
	body = `{
		"title": "x", "description": "x", "price": 100, "city": "porto",
		"address": "x", "latitude": 91, "longitude": 0,
		"bedrooms": 1, "bathrooms": 1, "area_sqm": 10, "property_type": "house"
	}`
	w = doRequest(t, r, http.MethodPost, "/api/properties", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProperty(t *testing.T) {
	r, store := setupTestRouter(t)

	property := seedProperty(t, store, nil)

	w := doRequest(t, r, http.MethodPut,
		fmt.Sprintf("/api/properties/%d", property.ID),
		`{"price": 475000, "is_featured": true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Property
	decodeJSON(t, w, &updated)
	assert.Equal(t, 475000.0, updated.Price)
	assert.True(t, updated.IsFeatured)
	assert.Equal(t, property.Title, updated.Title)
}

func TestDeleteProperty(t *testing.T) {
	r, store := setupTestRouter(t)

	property := seedProperty(t, store, nil)

	w := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/properties/%d", property.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/properties/%d", property.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListFeaturedProperties(t *testing.T) {
	r, store := setupTestRouter(t)

	seedProperty(t, store, nil)
	featured := seedProperty(t, store, func(in *models.CreatePropertyInput) {
		in.IsFeatured = true
	})

	w := doRequest(t, r, http.MethodGet, "/api/properties/featured", "")
	require.Equal(t, http.StatusOK, w.Code)

	var properties []models.Property
	decodeJSON(t, w, &properties)
	require.Len(t, properties, 1)
	assert.Equal(t, featured.ID, properties[0].ID)
}

func TestCreatePropertyImage_PropertyNotFound(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/properties/9999/images",
		`{"image_url": "https://example.com/1.jpg"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePropertyImage_RejectsMalformedURL(t *testing.T) {
	r, store := setupTestRouter(t)

	property := seedProperty(t, store, nil)

	w := doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/properties/%d/images", property.ID),
		`{"image_url": "not a url"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminStats(t *testing.T) {
	r, store := setupTestRouter(t)

	seedProperty(t, store, func(in *models.CreatePropertyInput) { in.IsFeatured = true })
	seedProperty(t, store, nil)

	w := doRequest(t, r, http.MethodGet, "/api/admin/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]map[string]int64
	decodeJSON(t, w, &stats)
	assert.EqualValues(t, 2, stats["properties"]["total"])
	assert.EqualValues(t, 1, stats["properties"]["featured"])
}

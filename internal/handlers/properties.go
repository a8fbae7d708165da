package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"property-catalog/internal/database"
	"property-catalog/internal/models"

	"github.com/gin-gonic/gin"
)

// PropertyHandler handles property catalog requests
type PropertyHandler struct {
	store *database.Store
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(store *database.Store) *PropertyHandler {
	return &PropertyHandler{store: store}
}

// List returns properties matching the optional query-parameter
// filters, newest first.
func (h *PropertyHandler) List(c *gin.Context) {
	filters := models.PropertyFilters{}

	if city := c.Query("city"); city != "" {
		if !models.City(city).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown city: " + city})
			return
		}
		filters.City = models.City(city)
	}

	if minPriceStr := c.Query("min_price"); minPriceStr != "" {
		if minPrice, parseErr := strconv.ParseFloat(minPriceStr, 64); parseErr == nil {
			filters.MinPrice = &minPrice
		}
	}
	if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
		if maxPrice, parseErr := strconv.ParseFloat(maxPriceStr, 64); parseErr == nil {
			filters.MaxPrice = &maxPrice
		}
	}

	if bedroomsStr := c.Query("bedrooms"); bedroomsStr != "" {
		if bedrooms, parseErr := strconv.Atoi(bedroomsStr); parseErr == nil {
			filters.Bedrooms = &bedrooms
		}
	}

	if propertyType := c.Query("property_type"); propertyType != "" {
		if !models.PropertyType(propertyType).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown property type: " + propertyType})
			return
		}
		filters.PropertyType = models.PropertyType(propertyType)
	}

	// Explicit is_featured=false is a real predicate, distinct from unset.
	if featuredStr := c.Query("is_featured"); featuredStr != "" {
		if featured, parseErr := strconv.ParseBool(featuredStr); parseErr == nil {
			filters.IsFeatured = &featured
		}
	}

	properties, err := h.store.GetProperties(&filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, properties)
}

// ListFeatured returns the promoted listings, newest first.
func (h *PropertyHandler) ListFeatured(c *gin.Context) {
	properties, err := h.store.GetFeaturedProperties()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, properties)
}

// GetByID returns a property together with its ordered images.
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	property, err := h.store.GetPropertyByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, property)
}

// Create inserts a new listing.
func (h *PropertyHandler) Create(c *gin.Context) {
	var in models.CreatePropertyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.store.CreateProperty(in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, property)
}

// Update applies a partial update to a listing.
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in models.UpdatePropertyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.store.UpdateProperty(id, in)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, property)
}

// Delete removes a listing; its images and favorites cascade with it.
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.store.DeleteProperty(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// parseID reads the :id route parameter; on failure it writes the 400
// response itself.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

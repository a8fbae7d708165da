package handlers

import (
	"errors"
	"net/http"

	"property-catalog/internal/database"
	"property-catalog/internal/models"

	"github.com/gin-gonic/gin"
)

// ImageHandler handles property image administration
type ImageHandler struct {
	store *database.Store
}

// NewImageHandler creates a new image handler
func NewImageHandler(store *database.Store) *ImageHandler {
	return &ImageHandler{store: store}
}

// Create attaches an image to the property in the route. Marking it
// primary demotes the property's other images in the same transaction.
func (h *ImageHandler) Create(c *gin.Context) {
	propertyID, ok := parseID(c)
	if !ok {
		return
	}

	var in models.CreatePropertyImageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := h.store.CreatePropertyImage(propertyID, in)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, image)
}

// Delete removes an image.
func (h *ImageHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.store.DeletePropertyImage(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

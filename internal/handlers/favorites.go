package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"property-catalog/internal/database"
	"property-catalog/internal/models"

	"github.com/gin-gonic/gin"
)

// FavoriteHandler handles session-scoped favorites
type FavoriteHandler struct {
	store *database.Store
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(store *database.Store) *FavoriteHandler {
	return &FavoriteHandler{store: store}
}

// Add records a favorite. Adding the same pair twice returns the
// original record.
func (h *FavoriteHandler) Add(c *gin.Context) {
	var in models.FavoriteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	favorite, err := h.store.AddFavorite(in.SessionID, in.PropertyID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, favorite)
}

// Remove deletes a favorite pair. A pair that was never added is not
// an error; removed is simply false.
func (h *FavoriteHandler) Remove(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}
	propertyID, err := strconv.ParseInt(c.Query("property_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property_id"})
		return
	}

	removed, err := h.store.RemoveFavorite(sessionID, propertyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// List returns the full property records favorited by the session.
func (h *FavoriteHandler) List(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	properties, err := h.store.GetFavorites(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, properties)
}

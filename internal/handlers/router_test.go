package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"property-catalog/internal/database"
	"property-catalog/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *database.Store) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	store := database.NewStoreFromDB(db)
	require.NoError(t, store.InitSchema())

	propertyHandler := NewPropertyHandler(store)
	imageHandler := NewImageHandler(store)
	favoriteHandler := NewFavoriteHandler(store)
	adminHandler := NewAdminHandler(store)

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/properties", propertyHandler.List)
		api.GET("/properties/featured", propertyHandler.ListFeatured)
		api.GET("/properties/:id", propertyHandler.GetByID)
		api.POST("/properties", propertyHandler.Create)
		api.PUT("/properties/:id", propertyHandler.Update)
		api.DELETE("/properties/:id", propertyHandler.Delete)
		api.POST("/properties/:id/images", imageHandler.Create)
		api.DELETE("/images/:id", imageHandler.Delete)
		api.GET("/favorites", favoriteHandler.List)
		api.POST("/favorites", favoriteHandler.Add)
		api.DELETE("/favorites", favoriteHandler.Remove)
		api.GET("/admin/stats", adminHandler.GetStats)
		api.GET("/admin/city-stats", adminHandler.GetCityStats)
		api.GET("/admin/price-distribution", adminHandler.GetPriceDistribution)
	}
	return r, store
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

func seedProperty(t *testing.T, store *database.Store, mutate func(*models.CreatePropertyInput)) *models.Property {
	in := models.CreatePropertyInput{
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
	if mutate != nil {
		mutate(&in)
	}
	property, err := store.CreateProperty(in)
	require.NoError(t, err)
	return property
}

package handlers

import (
	"net/http"

	"property-catalog/internal/database"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles catalog statistics requests
type AdminHandler struct {
	store *database.Store
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(store *database.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// GetStats returns catalog record counts
func (h *AdminHandler) GetStats(c *gin.Context) {
	db := h.store.DB()
	stats := make(map[string]interface{})

	var propertyCount, featuredCount int64
	db.Table("properties").Count(&propertyCount)
	db.Table("properties").Where("is_featured = ?", true).Count(&featuredCount)

	stats["properties"] = map[string]interface{}{
		"total":    propertyCount,
		"featured": featuredCount,
	}

	var imageCount int64
	db.Table("property_images").Count(&imageCount)
	stats["images"] = map[string]interface{}{
		"total": imageCount,
	}

	var favoriteCount, sessionCount int64
	db.Table("favorites").Count(&favoriteCount)
	db.Table("favorites").Distinct("session_id").Count(&sessionCount)
	stats["favorites"] = map[string]interface{}{
		"total":    favoriteCount,
		"sessions": sessionCount,
	}

	c.JSON(http.StatusOK, stats)
}

// GetCityStats returns listing counts per city
func (h *AdminHandler) GetCityStats(c *gin.Context) {
	type CityStat struct {
		City  string `json:"city"`
		Count int64  `json:"count"`
	}

	var stats []CityStat
	err := h.store.DB().Table("properties").
		Select("city, count(*) as count").
		Group("city").
		Order("count DESC").
		Scan(&stats).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"city_stats": stats,
		"count":      len(stats),
	})
}

// GetPriceDistribution returns listing counts per sale-price range
func (h *AdminHandler) GetPriceDistribution(c *gin.Context) {
	type PriceRange struct {
		RangeLabel string  `json:"range_label"`
		MinPrice   float64 `json:"min_price"`
		MaxPrice   float64 `json:"max_price"`
		Count      int64   `json:"count"`
	}

	// Sale-price buckets in EUR
	ranges := []PriceRange{
		{RangeLabel: "under 200k", MinPrice: 0, MaxPrice: 200000},
		{RangeLabel: "200k-400k", MinPrice: 200000, MaxPrice: 400000},
		{RangeLabel: "400k-600k", MinPrice: 400000, MaxPrice: 600000},
		{RangeLabel: "600k-1M", MinPrice: 600000, MaxPrice: 1000000},
		{RangeLabel: "over 1M", MinPrice: 1000000, MaxPrice: 100000000},
	}

	db := h.store.DB()
	for i := range ranges {
		var count int64
		db.Table("properties").
			Where("price >= ? AND price < ?", ranges[i].MinPrice, ranges[i].MaxPrice).
			Count(&count)
		ranges[i].Count = count
	}

	c.JSON(http.StatusOK, gin.H{
		"price_distribution": ranges,
	})
}

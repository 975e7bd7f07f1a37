package admin

import (
	"net/http"
	"time"

	"taverne-catalog/database"
	"taverne-catalog/internal/domain/catalog"
	"taverne-catalog/internal/domain/taxonomy"

	"github.com/gin-gonic/gin"
)

type CatalogStats struct {
	TotalPlates          int `json:"total_plates"`
	TotalStates          int `json:"total_states"`
	TotalImpressions     int `json:"total_impressions"`
	AvailableImpressions int `json:"available_impressions"`
	SoldImpressions      int `json:"sold_impressions"`

	TermsPerTaxonomy map[string]int `json:"terms_per_taxonomy"`

	RecentImpressions int `json:"recent_impressions"`
}

func AdminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the catalog dashboard",
	})
}

func GetCatalogStats(c *gin.Context) {
	var stats CatalogStats

	var plates, states, impressions, available, sold int64

	database.DB.Model(&catalog.Plate{}).Count(&plates)
	database.DB.Model(&catalog.State{}).Count(&states)
	database.DB.Model(&catalog.Impression{}).Count(&impressions)
	database.DB.Model(&catalog.Impression{}).
		Where("availability = ?", catalog.AvailabilityAvailable).
		Count(&available)
	database.DB.Model(&catalog.Impression{}).
		Where("availability = ?", catalog.AvailabilitySold).
		Count(&sold)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	var recent int64
	database.DB.Model(&catalog.Impression{}).
		Where("created_at >= ?", thirtyDaysAgo).
		Count(&recent)

	stats.TotalPlates = int(plates)
	stats.TotalStates = int(states)
	stats.TotalImpressions = int(impressions)
	stats.AvailableImpressions = int(available)
	stats.SoldImpressions = int(sold)
	stats.RecentImpressions = int(recent)

	type TaxCount struct {
		Taxonomy string
		Count    int
	}
	var counts []TaxCount

	database.DB.
		Model(&taxonomy.Term{}).
		Select("taxonomy, COUNT(id) as count").
		Group("taxonomy").
		Scan(&counts)

	stats.TermsPerTaxonomy = map[string]int{}
	for _, tc := range counts {
		stats.TermsPerTaxonomy[tc.Taxonomy] = tc.Count
	}

	c.JSON(http.StatusOK, stats)
}

package terms

import (
	"net/http"

	"taverne-catalog/database"
	"taverne-catalog/internal/domain/taxonomy"

	"github.com/gin-gonic/gin"
)

// ------------------------------
// GET /taxonomies
// ------------------------------
func ListTaxonomies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"taxonomies": taxonomy.PlateTaxonomies()})
}

// ------------------------------
// GET /taxonomies/:taxonomy/terms
// ------------------------------
func ListTerms(c *gin.Context) {
	tax := c.Param("taxonomy")
	if !taxonomy.IsPlateTaxonomy(tax) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown taxonomy"})
		return
	}

	var terms []taxonomy.Term
	err := database.DB.
		Where("taxonomy = ?", tax).
		Order("slug ASC").
		Find(&terms).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load terms"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"terms": terms})
}

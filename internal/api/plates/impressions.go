package plates

import (
	"net/http"

	"taverne-catalog/internal/editions"

	"github.com/gin-gonic/gin"
)

// ------------------------------
// POST /plates/:id/states/:stateId/impressions
// ------------------------------
func CreateImpression(c *gin.Context) {
	plateID, ok := paramID(c, "id")
	if !ok {
		return
	}
	stateID, ok := paramID(c, "stateId")
	if !ok {
		return
	}

	// All fields optional; price defaults to the plate's base price.
	var req editions.CreateImpressionInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	id, err := store().CreateImpression(plateID, stateID, req)
	if err != nil {
		storeError(c, err, "Failed to create impression")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ------------------------------
// GET /impressions/:id
// ------------------------------
func GetImpression(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	imp, err := store().GetImpression(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load impression"})
		return
	}
	if imp == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Impression not found"})
		return
	}

	c.JSON(http.StatusOK, toImpressionDTO(*imp))
}

// ------------------------------
// GET /states/:id/impressions
// ------------------------------
func ListStateImpressions(c *gin.Context) {
	stateID, ok := paramID(c, "id")
	if !ok {
		return
	}

	imps, err := store().ImpressionsForState(stateID, c.DefaultQuery("order_by", "sort_order"), c.DefaultQuery("direction", "asc"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load impressions"})
		return
	}

	out := make([]ImpressionDTO, 0, len(imps))
	for _, i := range imps {
		out = append(out, toImpressionDTO(i))
	}
	c.JSON(http.StatusOK, gin.H{"impressions": out})
}

// ------------------------------
// GET /plates/:id/impressions  (across all states)
// ------------------------------
func ListPlateImpressions(c *gin.Context) {
	plateID, ok := paramID(c, "id")
	if !ok {
		return
	}

	imps, err := store().ImpressionsForPlate(plateID, c.DefaultQuery("order_by", "sort_order"), c.DefaultQuery("direction", "asc"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load impressions"})
		return
	}

	out := make([]ImpressionDTO, 0, len(imps))
	for _, i := range imps {
		out = append(out, toImpressionDTO(i))
	}
	c.JSON(http.StatusOK, gin.H{"impressions": out})
}

// ------------------------------
// PUT /impressions/:id
// ------------------------------
func UpdateImpression(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req editions.UpdateImpressionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := store().UpdateImpression(id, req); err != nil {
		storeError(c, err, "Failed to update impression")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /impressions/:id
// ------------------------------
func DeleteImpression(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := store().DeleteImpression(id); err != nil {
		storeError(c, err, "Failed to delete impression")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// GET /states/:id/next-impression-number
// ------------------------------
func NextImpressionNumber(c *gin.Context) {
	stateID, ok := paramID(c, "id")
	if !ok {
		return
	}

	n, err := store().NextImpressionNumber(stateID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute next impression number"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"next_number": n})
}

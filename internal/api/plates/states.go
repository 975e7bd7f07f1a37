package plates

import (
	"net/http"

	"taverne-catalog/internal/editions"

	"github.com/gin-gonic/gin"
)

// ------------------------------
// POST /plates/:id/states
// ------------------------------
func CreateState(c *gin.Context) {
	plateID, ok := paramID(c, "id")
	if !ok {
		return
	}

	// All fields optional; a bare POST gets "State N" defaults.
	var req editions.CreateStateInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	id, err := store().CreateState(plateID, req)
	if err != nil {
		storeError(c, err, "Failed to create state")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ------------------------------
// GET /states/:id
// ------------------------------
func GetState(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	st, err := store().GetState(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load state"})
		return
	}
	if st == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "State not found"})
		return
	}

	c.JSON(http.StatusOK, toStateDTO(*st))
}

// ------------------------------
// PUT /states/:id
// ------------------------------
func UpdateState(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req editions.UpdateStateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := store().UpdateState(id, req); err != nil {
		storeError(c, err, "Failed to update state")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /states/:id  (cascades to its impressions)
// ------------------------------
func DeleteState(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := store().DeleteState(id); err != nil {
		storeError(c, err, "Failed to delete state")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// GET /plates/:id/next-state-number
// ------------------------------
func NextStateNumber(c *gin.Context) {
	plateID, ok := paramID(c, "id")
	if !ok {
		return
	}

	n, err := store().NextStateNumber(plateID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute next state number"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"next_number": n})
}

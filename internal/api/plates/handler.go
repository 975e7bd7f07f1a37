package plates

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"taverne-catalog/database"
	"taverne-catalog/internal/domain/catalog"
	"taverne-catalog/internal/domain/taxonomy"
	"taverne-catalog/internal/editions"
	"taverne-catalog/internal/gallery"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func store() *editions.Store {
	return editions.NewStore(database.DB)
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// storeError maps editions errors onto HTTP responses.
func storeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, editions.ErrStateNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "State not found"})
	case errors.Is(err, editions.ErrImpressionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Impression not found"})
	case errors.Is(err, editions.ErrStateNotOnPlate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "State does not belong to this plate"})
	case errors.Is(err, editions.ErrInvalidAvailability):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability value"})
	case errors.Is(err, editions.ErrNoFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}

// ------------------------------
// GET /plates  (public gallery)
// ------------------------------
func ListPlates(c *gin.Context) {
	selections := map[string][]string{}
	for _, tax := range taxonomy.PlateTaxonomies() {
		if slugs := c.QueryArray(tax); len(slugs) > 0 {
			selections[tax] = slugs
		}
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	opts := gallery.ListOptions{Page: page}

	// The public archive only ever lists plates with at least one
	// available impression.
	result, total, err := gallery.ListPlates(database.DB.Preload("Terms"), selections, opts, gallery.AvailableOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plates"})
		return
	}

	out := PlateListDTO{
		Plates:     make([]PlateDTO, 0, len(result)),
		Page:       opts.Page,
		PageSize:   gallery.DefaultPageSize,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(gallery.DefaultPageSize))),
	}
	if out.Page < 1 {
		out.Page = 1
	}
	for _, p := range result {
		out.Plates = append(out.Plates, toPlateDTO(p))
	}

	c.JSON(http.StatusOK, out)
}

// ------------------------------
// GET /plates/:id  (catalog entry)
// ------------------------------
func GetPlate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	p, err := plateByID(database.DB, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plate"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plate not found"})
		return
	}

	c.JSON(http.StatusOK, toPlateDTO(*p))
}

// ------------------------------
// GET /plates/:id/states  (display tree)
// ------------------------------
func GetPlateStates(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	st := store()
	states, err := st.StatesForPlate(id, c.DefaultQuery("order_by", "sort_order"), c.DefaultQuery("direction", "asc"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load states"})
		return
	}
	for i := range states {
		imps, err := st.ImpressionsForState(states[i].ID, "sort_order", "asc")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load impressions"})
			return
		}
		states[i].Impressions = imps
	}

	out := make([]StateDTO, 0, len(states))
	for _, s := range states {
		out = append(out, toStateDTO(s))
	}
	c.JSON(http.StatusOK, gin.H{"states": out})
}

// ------------------------------
// POST /plates
// ------------------------------
func CreatePlate(c *gin.Context) {
	var req CreatePlateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = catalog.MakeSlug(req.Title)
	}

	var warnings []string
	var plateID uint
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		p := catalog.Plate{
			Title:          req.Title,
			Slug:           slug,
			WidthCM:        req.WidthCM,
			HeightCM:       req.HeightCM,
			BasePrice:      req.BasePrice,
			Year:           req.Year,
			MatrixSlug:     req.MatrixSlug,
			StudySlug:      req.StudySlug,
			SKU:            req.SKU,
			SeoTitle:       req.SeoTitle,
			SeoDescription: req.SeoDescription,
			Noindex:        req.Noindex,
		}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		plateID = p.ID

		if len(req.Terms) > 0 {
			terms, warns, err := resolveTerms(tx, req.Terms)
			if err != nil {
				return err
			}
			warnings = warns
			if len(terms) > 0 {
				if err := tx.Model(&p).Association("Terms").Append(terms); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plate", "details": err.Error()})
		return
	}

	// Populate the computed fields (and one-time canonical URL).
	if err := store().RecalculatePlateAggregates(plateID); err != nil {
		warnings = append(warnings, "aggregate recalculation failed: "+err.Error())
	}

	resp := gin.H{"id": plateID}
	if len(warnings) > 0 {
		resp["warnings"] = warnings
	}
	c.JSON(http.StatusCreated, resp)
}

// ------------------------------
// PUT /plates/:id
// ------------------------------
func UpdatePlate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdatePlateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.WidthCM != nil {
		updates["width_cm"] = *req.WidthCM
	}
	if req.HeightCM != nil {
		updates["height_cm"] = *req.HeightCM
	}
	if req.BasePrice != nil {
		updates["base_price"] = *req.BasePrice
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.MatrixSlug != nil {
		updates["matrix_slug"] = *req.MatrixSlug
	}
	if req.StudySlug != nil {
		updates["study_slug"] = *req.StudySlug
	}
	if req.SKU != nil {
		updates["sku"] = *req.SKU
	}
	if req.SeoTitle != nil {
		updates["seo_title"] = *req.SeoTitle
	}
	if req.SeoDescription != nil {
		updates["seo_description"] = *req.SeoDescription
	}
	if req.Noindex != nil {
		updates["noindex"] = *req.Noindex
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	res := database.DB.Model(&catalog.Plate{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plate"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plate not found"})
		return
	}

	// A dimension edit changes the computed size/area; refresh right away.
	if req.WidthCM != nil || req.HeightCM != nil {
		if err := store().RecalculatePlateAggregates(id); err != nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "warnings": []string{"aggregate recalculation failed: " + err.Error()}})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /plates/:id
// ------------------------------
// Deleting a plate takes its states and impressions with it, in one
// transaction.
func DeletePlate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var p catalog.Plate
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}

		if err := tx.Where("plate_id = ?", id).Delete(&catalog.Impression{}).Error; err != nil {
			return err
		}
		if err := tx.Where("plate_id = ?", id).Delete(&catalog.State{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&p).Association("Terms").Clear(); err != nil {
			return err
		}
		return tx.Delete(&catalog.Plate{}, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete plate", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// PUT /plates/:id/terms
// ------------------------------
func AssignPlateTerms(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req AssignTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var warnings []string
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var p catalog.Plate
		if err := tx.Preload("Terms").First(&p, id).Error; err != nil {
			return err
		}

		resolved, warns, err := resolveTerms(tx, req.Terms)
		if err != nil {
			return err
		}
		warnings = warns

		// Keep assignments in taxonomies the request does not mention.
		final := resolved
		for _, t := range p.Terms {
			if _, touched := req.Terms[t.Taxonomy]; !touched {
				final = append(final, t)
			}
		}

		return tx.Model(&p).Association("Terms").Replace(final)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign terms", "details": err.Error()})
		return
	}

	resp := gin.H{"status": "ok"}
	if len(warnings) > 0 {
		resp["warnings"] = warnings
	}
	c.JSON(http.StatusOK, resp)
}

// resolveTerms maps taxonomy -> term slugs onto term rows. Unknown
// taxonomies and unknown slugs are reported as warnings, not errors.
func resolveTerms(tx *gorm.DB, selections map[string][]string) ([]taxonomy.Term, []string, error) {
	var out []taxonomy.Term
	var warnings []string

	for tax, slugs := range selections {
		if !taxonomy.IsPlateTaxonomy(tax) {
			warnings = append(warnings, "unknown taxonomy: "+tax)
			continue
		}
		if len(slugs) == 0 {
			continue
		}

		var terms []taxonomy.Term
		if err := tx.Where("taxonomy = ? AND slug IN ?", tax, slugs).Find(&terms).Error; err != nil {
			return nil, nil, err
		}

		found := map[string]bool{}
		for _, t := range terms {
			found[t.Slug] = true
		}
		for _, slug := range slugs {
			if !found[slug] {
				warnings = append(warnings, "unknown term: "+tax+"/"+slug)
			}
		}
		out = append(out, terms...)
	}
	return out, warnings, nil
}

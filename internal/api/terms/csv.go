package terms

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"taverne-catalog/database"
	"taverne-catalog/internal/domain/taxonomy"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var csvHeader = []string{"taxonomy", "slug", "name", "description", "image_url"}

// ------------------------------
// POST /admin/terms/import  (multipart "csv_file")
// ------------------------------
// Bulk upsert of taxonomy terms by (taxonomy, slug). Bad rows are
// reported as warnings; good rows still land.
func ImportTermsCSV(c *gin.Context) {
	file, _, err := c.Request.FormFile("csv_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing csv_file upload"})
		return
	}
	defer file.Close()

	imported, warnings, err := importTerms(database.DB, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"imported": imported}
	if len(warnings) > 0 {
		resp["warnings"] = warnings
	}
	c.JSON(http.StatusOK, resp)
}

func importTerms(db *gorm.DB, r io.Reader) (int, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, nil, errors.New("empty or unreadable CSV")
	}
	if len(header) < 3 || strings.TrimSpace(strings.ToLower(header[0])) != "taxonomy" {
		return 0, nil, fmt.Errorf("unexpected header, want %q", strings.Join(csvHeader, ","))
	}

	imported := 0
	var warnings []string

	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		if len(row) < 3 {
			warnings = append(warnings, fmt.Sprintf("line %d: too few columns", line))
			continue
		}

		tax := strings.TrimSpace(row[0])
		slug := strings.TrimSpace(row[1])
		name := strings.TrimSpace(row[2])

		if !taxonomy.IsPlateTaxonomy(tax) {
			warnings = append(warnings, fmt.Sprintf("line %d: unknown taxonomy %q", line, tax))
			continue
		}
		if slug == "" || name == "" {
			warnings = append(warnings, fmt.Sprintf("line %d: slug and name are required", line))
			continue
		}

		term := taxonomy.Term{Taxonomy: tax, Slug: slug, Name: name}
		if len(row) > 3 {
			term.Description = strings.TrimSpace(row[3])
		}
		if len(row) > 4 {
			term.ImageURL = strings.TrimSpace(row[4])
		}

		if err := upsertTerm(db, term); err != nil {
			// Non-fatal: the rest of the file still imports.
			warnings = append(warnings, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		imported++
	}

	return imported, warnings, nil
}

func upsertTerm(db *gorm.DB, term taxonomy.Term) error {
	var existing taxonomy.Term
	err := db.Where("taxonomy = ? AND slug = ?", term.Taxonomy, term.Slug).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&term).Error
	}
	if err != nil {
		return err
	}

	return db.Model(&taxonomy.Term{}).
		Where("id = ?", existing.ID).
		Updates(map[string]interface{}{
			"name":        term.Name,
			"description": term.Description,
			"image_url":   term.ImageURL,
		}).Error
}

// ------------------------------
// GET /admin/terms/export
// ------------------------------
func ExportTermsCSV(c *gin.Context) {
	var terms []taxonomy.Term
	err := database.DB.
		Order("taxonomy ASC, slug ASC").
		Find(&terms).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load terms"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="plate-terms.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write(csvHeader)
	for _, t := range terms {
		_ = w.Write([]string{t.Taxonomy, t.Slug, t.Name, t.Description, t.ImageURL})
	}
	w.Flush()
}

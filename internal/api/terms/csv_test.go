package terms

import (
	"strings"
	"testing"

	"taverne-catalog/internal/domain/taxonomy"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&taxonomy.Term{}))
	return db
}

func TestImportTermsCreatesAndWarns(t *testing.T) {
	db := setupTestDB(t)

	csv := strings.Join([]string{
		"taxonomy,slug,name,description,image_url",
		"plate_technique,drypoint,Drypoint,Needle drawn directly into the plate,https://img.example/drypoint.jpg",
		"plate_palette,sepia,Sepia",
		"plate_bogus,foo,Foo",
		"plate_motif,,Missing Slug",
	}, "\n")

	imported, warnings, err := importTerms(db, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, imported)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "unknown taxonomy")
	assert.Contains(t, warnings[1], "slug and name are required")

	var term taxonomy.Term
	require.NoError(t, db.Where("taxonomy = ? AND slug = ?", taxonomy.Technique, "drypoint").First(&term).Error)
	assert.Equal(t, "Drypoint", term.Name)
	assert.Equal(t, "Needle drawn directly into the plate", term.Description)
	assert.Equal(t, "https://img.example/drypoint.jpg", term.ImageURL)
}

func TestImportTermsUpsertsBySlug(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&taxonomy.Term{
		Taxonomy:    taxonomy.Palette,
		Slug:        "sepia",
		Name:        "Old Name",
		Description: "stale",
	}).Error)

	csv := "taxonomy,slug,name,description,image_url\nplate_palette,sepia,Sepia,warm brown ink,\n"
	imported, warnings, err := importTerms(db, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, imported)
	assert.Empty(t, warnings)

	var terms []taxonomy.Term
	require.NoError(t, db.Where("taxonomy = ?", taxonomy.Palette).Find(&terms).Error)
	require.Len(t, terms, 1)
	assert.Equal(t, "Sepia", terms[0].Name)
	assert.Equal(t, "warm brown ink", terms[0].Description)
}

func TestImportTermsRejectsBadHeader(t *testing.T) {
	db := setupTestDB(t)

	_, _, err := importTerms(db, strings.NewReader("slug,name\nfoo,bar\n"))
	assert.Error(t, err)

	_, _, err = importTerms(db, strings.NewReader(""))
	assert.Error(t, err)
}

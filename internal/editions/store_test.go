package editions

import (
	"testing"

	"taverne-catalog/internal/domain/catalog"
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
	require.NoError(t, db.AutoMigrate(
		&taxonomy.Term{},
		&catalog.Plate{},
		&catalog.State{},
		&catalog.Impression{},
	))
	return db
}

func newTestPlate(t *testing.T, db *gorm.DB, width, height, basePrice float64) *catalog.Plate {
	t.Helper()
	p := &catalog.Plate{
		Title:     "Test Plate",
		Slug:      "test-plate",
		WidthCM:   width,
		HeightCM:  height,
		BasePrice: basePrice,
		Year:      2023,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestCreateStateDefaults(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	plate := newTestPlate(t, db, 45, 60, 300)

	id, err := store.CreateState(plate.ID, CreateStateInput{})
	require.NoError(t, err)

	st, err := store.GetState(id)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, 1, st.StateNumber)
	assert.Equal(t, "State 1", st.Title)
	assert.Equal(t, 1, st.SortOrder)
	assert.Equal(t, plate.ID, st.PlateID)

	id2, err := store.CreateState(plate.ID, CreateStateInput{Title: strPtr("Reworked sky")})
	require.NoError(t, err)

	st2, err := store.GetState(id2)
	require.NoError(t, err)
	assert.Equal(t, 2, st2.StateNumber)
	assert.Equal(t, "Reworked sky", st2.Title)
}

func TestStateNumbersNeverReused(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	plate := newTestPlate(t, db, 45, 60, 300)

	var ids []uint
	for i := 0; i < 3; i++ {
		id, err := store.CreateState(plate.ID, CreateStateInput{})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	require.NoError(t, store.DeleteState(ids[1]))

	id4, err := store.CreateState(plate.ID, CreateStateInput{})
	require.NoError(t, err)

	states, err := store.StatesForPlate(plate.ID, "state_number", "asc")
	require.NoError(t, err)
	require.Len(t, states, 3)
	assert.Equal(t, []int{1, 3, 4}, []int{states[0].StateNumber, states[1].StateNumber, states[2].StateNumber})

	st4, err := store.GetState(id4)
	require.NoError(t, err)
	assert.Equal(t, 4, st4.StateNumber)
}

func TestImpressionNumbersScopedToState(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	plate := newTestPlate(t, db, 45, 60, 300)

	s1, err := store.CreateState(plate.ID, CreateStateInput{})
	require.NoError(t, err)
	s2, err := store.CreateState(plate.ID, CreateStateInput{})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := store.CreateImpression(plate.ID, s1, CreateImpressionInput{})
		require.NoError(t, err)
	}
	i1, err := store.CreateImpression(plate.ID, s2, CreateImpressionInput{})
	require.NoError(t, err)

	// Numbers restart per state.
	imp, err := store.GetImpression(i1)
	require.NoError(t, err)
	assert.Equal(t, 1, imp.ImpressionNumber)

	next, err := store.NextImpressionNumber(s1)
	require.NoError(t, err)
	assert.Equal(t, 3, next)
}

func TestCreateImpressionRejectsForeignState(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	plateA := newTestPlate(t, db, 45, 60, 300)
	plateB := &catalog.Plate{Title: "Other", Slug: "other", WidthCM: 30, HeightCM: 40}
	require.NoError(t, db.Create(plateB).Error)

	stateA, err := store.CreateState(plateA.ID, CreateStateInput{})
	require.NoError(t, err)

	_, err = store.CreateImpression(plateB.ID, stateA, CreateImpressionInput{})
	assert.ErrorIs(t, err, ErrStateNotOnPlate)

	// Missing state behaves the same.
	_, err = store.CreateImpression(plateA.ID, 9999, CreateImpressionInput{})
	assert.ErrorIs(t, err, ErrStateNotOnPlate)

	// Nothing persisted.
	n, err := store.ImpressionCountForPlate(plateA.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	n, err = store.ImpressionCountForPlate(plateB.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCreateImpressionSeedsBasePrice(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	plate := newTestPlate(t, db, 45, 60, 350)

	stateID, err := store.CreateState(plate.ID, CreateStateInput{})
	require.NoError(t, err)

	id, err := store.CreateImpression(plate.ID, stateID, CreateImpressionInput{})
	require.NoError(t, err)

	imp, err := store.GetImpression(id)
	require.NoError(t, err)
	assert.Equal(t, 350.0, imp.Price)
	assert.Equal(t, catalog.AvailabilityAvailable, imp.Availability)

	// Explicit price wins, including zero.
	id2, err := store.CreateImpression(plate.ID, stateID, CreateImpressionInput{Price: floatPtr(0)})
	require.NoError(t, err)
	imp2, err := store.GetImpression(id2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, imp2.Price)
}

func TestUpdateImpressionPartialIsolation(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	plate := newTestPlate(t, db, 45, 60, 300)

	stateID, err := store.CreateState(plate.ID, CreateStateInput{})
	require.NoError(t, err)
	id, err := store.CreateImpression(plate.ID, stateID, CreateImpressionInput{
		Color:        strPtr("sepia"),
		Availability: strPtr("artist"),
		Notes:        strPtr("rich burr on the left margin"),
	})
	require.NoError(t, err)

	require.NoError(t, store.UpdateImpression(id, UpdateImpressionInput{Price: floatPtr(420)}))

	imp, err := store.GetImpression(id)
	require.NoError(t, err)
	assert.Equal(t, 420.0, imp.Price)
	assert.Equal(t, "sepia", imp.Color)
	assert.Equal(t, catalog.AvailabilityArtist, imp.Availability)
	assert.Equal(t, "rich burr on the left margin", imp.Notes)
}

func TestUpdateWithNoFields(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	plate := newTestPlate(t, db, 45, 60, 300)

	stateID, err := store.CreateState(plate.ID, CreateStateInput{})
	require.NoError(t, err)
	impID, err := store.CreateImpression(plate.ID, stateID, CreateImpressionInput{})
	require.NoError(t, err)

	assert.ErrorIs(t, store.UpdateState(stateID, UpdateStateInput{}), ErrNoFields)
	assert.ErrorIs(t, store.UpdateImpression(impID, UpdateImpressionInput{}), ErrNoFields)
}

func TestUpdateMissingRows(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	assert.ErrorIs(t, store.UpdateState(42, UpdateStateInput{Title: strPtr("x")}), ErrStateNotFound)
	assert.ErrorIs(t, store.UpdateImpression(42, UpdateImpressionInput{Price: floatPtr(1)}), ErrImpressionNotFound)
	assert.ErrorIs(t, store.DeleteState(42), ErrStateNotFound)
	assert.ErrorIs(t, store.DeleteImpression(42), ErrImpressionNotFound)
}

func TestGetMissingReturnsNil(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	st, err := store.GetState(42)
	require.NoError(t, err)
	assert.Nil(t, st)

	imp, err := store.GetImpression(42)
	require.NoError(t, err)
	assert.Nil(t, imp)
}

func TestDeleteStateCascades(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	plate := newTestPlate(t, db, 45, 60, 300)

	s1, err := store.CreateState(plate.ID, CreateStateInput{})
	require.NoError(t, err)
	s2, err := store.CreateState(plate.ID, CreateStateInput{})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := store.CreateImpression(plate.ID, s1, CreateImpressionInput{})
		require.NoError(t, err)
	}
	kept, err := store.CreateImpression(plate.ID, s2, CreateImpressionInput{})
	require.NoError(t, err)

	before, err := store.ImpressionCountForPlate(plate.ID)
	require.NoError(t, err)
	require.Equal(t, 4, before)

	require.NoError(t, store.DeleteState(s1))

	after, err := store.ImpressionCountForPlate(plate.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, after)

	// Only s1's impressions went away.
	imp, err := store.GetImpression(kept)
	require.NoError(t, err)
	require.NotNil(t, imp)

	n, err := store.ImpressionCountForState(s1)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestPaletteAggregate(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	plate := newTestPlate(t, db, 45, 60, 300)

	stateID, err := store.CreateState(plate.ID, CreateStateInput{})
	require.NoError(t, err)

	for _, color := range []string{"sepia", "black", "sepia", ""} {
		c := color
		_, err := store.CreateImpression(plate.ID, stateID, CreateImpressionInput{Color: &c})
		require.NoError(t, err)
	}

	palette, err := store.PaletteAggregateForPlate(plate.ID)
	require.NoError(t, err)
	assert.Equal(t, "black, sepia", palette)
}

func TestAvailabilityValidation(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	plate := newTestPlate(t, db, 45, 60, 300)

	stateID, err := store.CreateState(plate.ID, CreateStateInput{})
	require.NoError(t, err)

	_, err = store.CreateImpression(plate.ID, stateID, CreateImpressionInput{Availability: strPtr("gone")})
	assert.ErrorIs(t, err, ErrInvalidAvailability)

	impID, err := store.CreateImpression(plate.ID, stateID, CreateImpressionInput{})
	require.NoError(t, err)
	err = store.UpdateImpression(impID, UpdateImpressionInput{Availability: strPtr("maybe")})
	assert.ErrorIs(t, err, ErrInvalidAvailability)
}

func TestTextSanitization(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	plate := newTestPlate(t, db, 45, 60, 300)

	id, err := store.CreateState(plate.ID, CreateStateInput{
		Title:       strPtr("<b>Second state</b>"),
		Description: strPtr(`<em>burnished</em> highlights<script>alert(1)</script>`),
	})
	require.NoError(t, err)

	st, err := store.GetState(id)
	require.NoError(t, err)
	// Plain-text fields lose all markup; the description keeps its subset.
	assert.Equal(t, "Second state", st.Title)
	assert.Contains(t, st.Description, "<em>burnished</em>")
	assert.NotContains(t, st.Description, "script")
}

func TestOrderingFallsBackToSortOrder(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	plate := newTestPlate(t, db, 45, 60, 300)

	s1, err := store.CreateState(plate.ID, CreateStateInput{SortOrder: intPtr(2)})
	require.NoError(t, err)
	s2, err := store.CreateState(plate.ID, CreateStateInput{SortOrder: intPtr(1)})
	require.NoError(t, err)

	// Unknown column names are not interpolated into SQL.
	states, err := store.StatesForPlate(plate.ID, "; DROP TABLE states", "asc")
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, s2, states[0].ID)
	assert.Equal(t, s1, states[1].ID)
}

func TestEndToEndScenario(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	plate := newTestPlate(t, db, 45, 60, 300)

	require.NoError(t, store.RecalculatePlateAggregates(plate.ID))

	var p catalog.Plate
	require.NoError(t, db.First(&p, plate.ID).Error)
	assert.Equal(t, "M", p.SizeComputed)
	assert.Equal(t, 2700.0, p.AreaComputed)

	stateID, err := store.CreateState(plate.ID, CreateStateInput{})
	require.NoError(t, err)

	impID, err := store.CreateImpression(plate.ID, stateID, CreateImpressionInput{})
	require.NoError(t, err)
	imp, err := store.GetImpression(impID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, imp.Price)

	require.NoError(t, store.UpdateImpression(impID, UpdateImpressionInput{Availability: strPtr("sold")}))
	n, err := store.AvailableImpressionCountForPlate(plate.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = store.CreateImpression(plate.ID, stateID, CreateImpressionInput{})
	require.NoError(t, err)

	require.NoError(t, db.First(&p, plate.ID).Error)
	assert.Equal(t, 1, p.TotalStates)
	assert.Equal(t, 2, p.TotalImpressions)
	assert.Equal(t, 1, p.AvailableImpressions)
}

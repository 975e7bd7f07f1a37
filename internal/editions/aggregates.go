package editions

import (
	"errors"
	"strings"

	"taverne-catalog/config"
	"taverne-catalog/internal/domain/catalog"

	"gorm.io/gorm"
)

// RecalculatePlateAggregates refreshes every computed field on a plate:
// size label and area from the dimensions, state/impression totals,
// available count and palette aggregate from the child tables. Idempotent;
// a missing plate id is a no-op. Runs after every state/impression
// mutation and after any width/height edit on the plate itself.
func (s *Store) RecalculatePlateAggregates(plateID uint) error {
	var plate catalog.Plate
	err := s.db.First(&plate, plateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	size, area := catalog.ComputeSize(plate.WidthCM, plate.HeightCM)

	totalStates, err := s.StateCount(plateID)
	if err != nil {
		return err
	}
	totalImpressions, err := s.ImpressionCountForPlate(plateID)
	if err != nil {
		return err
	}
	available, err := s.AvailableImpressionCountForPlate(plateID)
	if err != nil {
		return err
	}
	palette, err := s.PaletteAggregateForPlate(plateID)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"size_computed":         size,
		"area_computed":         area,
		"total_states":          totalStates,
		"total_impressions":     totalImpressions,
		"available_impressions": available,
		"palette_aggregate":     palette,
	}

	// One-time default: never overwritten once set.
	if plate.CanonicalURL == "" {
		updates["canonical_url"] = PermalinkFor(plate.Slug)
	}

	return s.db.Model(&catalog.Plate{}).
		Where("id = ?", plateID).
		Updates(updates).Error
}

// PermalinkFor builds the permanent public address of a plate.
func PermalinkFor(slug string) string {
	return strings.TrimRight(config.PUBLIC_BASE_URL, "/") + "/plates/" + slug
}

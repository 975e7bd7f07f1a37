package editions

import (
	"strings"

	"taverne-catalog/internal/domain/catalog"
)

func (s *Store) StateCount(plateID uint) (int, error) {
	var n int64
	err := s.db.Model(&catalog.State{}).
		Where("plate_id = ?", plateID).
		Count(&n).Error
	return int(n), err
}

func (s *Store) ImpressionCountForState(stateID uint) (int, error) {
	var n int64
	err := s.db.Model(&catalog.Impression{}).
		Where("state_id = ?", stateID).
		Count(&n).Error
	return int(n), err
}

func (s *Store) ImpressionCountForPlate(plateID uint) (int, error) {
	var n int64
	err := s.db.Model(&catalog.Impression{}).
		Where("plate_id = ?", plateID).
		Count(&n).Error
	return int(n), err
}

func (s *Store) AvailableImpressionCountForPlate(plateID uint) (int, error) {
	var n int64
	err := s.db.Model(&catalog.Impression{}).
		Where("plate_id = ? AND availability = ?", plateID, catalog.AvailabilityAvailable).
		Count(&n).Error
	return int(n), err
}

// PaletteAggregateForPlate joins the distinct non-empty colors used by
// the plate's impressions, alphabetically, as "black, sepia".
func (s *Store) PaletteAggregateForPlate(plateID uint) (string, error) {
	var colors []string
	err := s.db.Model(&catalog.Impression{}).
		Distinct("color").
		Where("plate_id = ? AND color <> ''", plateID).
		Order("color ASC").
		Pluck("color", &colors).Error
	if err != nil {
		return "", err
	}
	return strings.Join(colors, ", "), nil
}

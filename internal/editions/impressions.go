package editions

import (
	"errors"

	"taverne-catalog/internal/domain/catalog"

	"gorm.io/gorm"
)

// CreateImpression adds the next impression to a state. The state must
// exist and belong to the named plate or nothing is persisted. When no
// price is supplied the plate's current base price is seeded.
func (s *Store) CreateImpression(plateID, stateID uint, in CreateImpressionInput) (uint, error) {
	availability := catalog.AvailabilityAvailable
	if in.Availability != nil {
		av, err := normalizeAvailability(*in.Availability)
		if err != nil {
			return 0, err
		}
		availability = av
	}

	var id uint
	err := s.withNumberRetry(func() error {
		return s.db.Transaction(func(tx *gorm.DB) error {
			var st catalog.State
			err := tx.First(&st, stateID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && st.PlateID != plateID) {
				return ErrStateNotOnPlate
			}
			if err != nil {
				return err
			}

			next, err := nextImpressionNumber(tx, stateID)
			if err != nil {
				return err
			}

			imp := catalog.Impression{
				PlateID:          plateID,
				StateID:          stateID,
				ImpressionNumber: next,
				Availability:     availability,
				SortOrder:        next,
			}
			if in.ImageID != nil {
				imp.ImageID = zeroToNil(*in.ImageID)
			}
			if in.Color != nil {
				imp.Color = sanitizeText(*in.Color)
			}
			if in.Price != nil {
				imp.Price = nonNegative(*in.Price)
			} else {
				var plate catalog.Plate
				if err := tx.First(&plate, plateID).Error; err == nil {
					imp.Price = plate.BasePrice
				}
			}
			if in.Changes != nil {
				imp.Changes = sanitizeText(*in.Changes)
			}
			if in.Notes != nil {
				imp.Notes = sanitizeText(*in.Notes)
			}
			if in.SortOrder != nil {
				imp.SortOrder = *in.SortOrder
			}

			if err := tx.Create(&imp).Error; err != nil {
				return err
			}
			id = imp.ID
			return nil
		})
	})
	if err != nil {
		return 0, err
	}

	s.recalculate(plateID)
	return id, nil
}

// GetImpression returns nil (not an error) for a missing id.
func (s *Store) GetImpression(impressionID uint) (*catalog.Impression, error) {
	var imp catalog.Impression
	err := s.db.First(&imp, impressionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &imp, nil
}

func (s *Store) ImpressionsForState(stateID uint, orderBy, direction string) ([]catalog.Impression, error) {
	var imps []catalog.Impression
	err := s.db.
		Where("state_id = ?", stateID).
		Order(orderClause(impressionOrderColumns, orderBy, direction)).
		Find(&imps).Error
	return imps, err
}

// ImpressionsForPlate spans all states of the plate.
func (s *Store) ImpressionsForPlate(plateID uint, orderBy, direction string) ([]catalog.Impression, error) {
	var imps []catalog.Impression
	err := s.db.
		Where("plate_id = ?", plateID).
		Order(orderClause(impressionOrderColumns, orderBy, direction)).
		Find(&imps).Error
	return imps, err
}

func (s *Store) UpdateImpression(impressionID uint, in UpdateImpressionInput) error {
	updates, err := in.updates()
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return ErrNoFields
	}

	var plateID uint
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var imp catalog.Impression
		if err := tx.First(&imp, impressionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrImpressionNotFound
			}
			return err
		}
		plateID = imp.PlateID

		return tx.Model(&catalog.Impression{}).
			Where("id = ?", impressionID).
			Updates(updates).Error
	})
	if err != nil {
		return err
	}

	s.recalculate(plateID)
	return nil
}

func (s *Store) DeleteImpression(impressionID uint) error {
	var plateID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var imp catalog.Impression
		if err := tx.First(&imp, impressionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrImpressionNotFound
			}
			return err
		}
		plateID = imp.PlateID

		return tx.Delete(&catalog.Impression{}, impressionID).Error
	})
	if err != nil {
		return err
	}

	s.recalculate(plateID)
	return nil
}

// NextImpressionNumber previews the number the next created impression
// in this state will get.
func (s *Store) NextImpressionNumber(stateID uint) (int, error) {
	return nextImpressionNumber(s.db, stateID)
}

func nextImpressionNumber(tx *gorm.DB, stateID uint) (int, error) {
	var max *int
	err := tx.Model(&catalog.Impression{}).
		Where("state_id = ?", stateID).
		Select("MAX(impression_number)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}

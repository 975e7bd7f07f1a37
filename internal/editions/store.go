package editions

import (
	"errors"
	"fmt"
	"log"

	"taverne-catalog/internal/domain/catalog"

	"gorm.io/gorm"
)

// Store owns the plate_states and plate_impressions-equivalent tables.
// All mutations run inside a transaction and synchronously refresh the
// parent plate's computed aggregates before returning.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Number assignment is read-max-then-insert; the unique index on
// (parent id, number) turns a concurrent double-assignment into a
// duplicate-key error, which we retry.
const numberAssignRetries = 3

func (s *Store) withNumberRetry(fn func() error) error {
	var err error
	for i := 0; i < numberAssignRetries; i++ {
		err = fn()
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return err
}

// recalculate refreshes the plate's computed fields after a mutation.
// Best effort: a recalculation failure never reverts the mutation it
// follows, it is only logged.
func (s *Store) recalculate(plateID uint) {
	if err := s.RecalculatePlateAggregates(plateID); err != nil {
		log.Printf("editions: recalculate aggregates for plate %d: %v", plateID, err)
	}
}

// ------------------------------
// States
// ------------------------------

// CreateState adds the next state to a plate. Always succeeds without
// user input; defaults are "State N", empty texts and sort order N.
func (s *Store) CreateState(plateID uint, in CreateStateInput) (uint, error) {
	var id uint
	err := s.withNumberRetry(func() error {
		return s.db.Transaction(func(tx *gorm.DB) error {
			next, err := nextStateNumber(tx, plateID)
			if err != nil {
				return err
			}

			st := catalog.State{
				PlateID:     plateID,
				StateNumber: next,
				Title:       fmt.Sprintf("State %d", next),
				SortOrder:   next,
			}
			if in.Title != nil {
				st.Title = sanitizeText(*in.Title)
			}
			if in.Excerpt != nil {
				st.Excerpt = sanitizeText(*in.Excerpt)
			}
			if in.Description != nil {
				st.Description = sanitizeRichText(*in.Description)
			}
			if in.FeaturedImageID != nil {
				st.FeaturedImageID = zeroToNil(*in.FeaturedImageID)
			}
			if in.FeaturedImpressionID != nil {
				st.FeaturedImpressionID = zeroToNil(*in.FeaturedImpressionID)
			}
			if in.SortOrder != nil {
				st.SortOrder = *in.SortOrder
			}

			if err := tx.Create(&st).Error; err != nil {
				return err
			}
			id = st.ID
			return nil
		})
	})
	if err != nil {
		return 0, err
	}

	s.recalculate(plateID)
	return id, nil
}

// GetState returns nil (not an error) for a missing id.
func (s *Store) GetState(stateID uint) (*catalog.State, error) {
	var st catalog.State
	err := s.db.First(&st, stateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *Store) StatesForPlate(plateID uint, orderBy, direction string) ([]catalog.State, error) {
	var states []catalog.State
	err := s.db.
		Where("plate_id = ?", plateID).
		Order(orderClause(stateOrderColumns, orderBy, direction)).
		Find(&states).Error
	return states, err
}

func (s *Store) UpdateState(stateID uint, in UpdateStateInput) error {
	updates := in.updates()
	if len(updates) == 0 {
		return ErrNoFields
	}

	var plateID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var st catalog.State
		if err := tx.First(&st, stateID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStateNotFound
			}
			return err
		}
		plateID = st.PlateID

		return tx.Model(&catalog.State{}).
			Where("id = ?", stateID).
			Updates(updates).Error
	})
	if err != nil {
		return err
	}

	s.recalculate(plateID)
	return nil
}

// DeleteState removes the state and every impression in it, in one
// transaction so a mid-sequence failure cannot orphan rows. The state
// number is not reused by later creates.
func (s *Store) DeleteState(stateID uint) error {
	var plateID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var st catalog.State
		if err := tx.First(&st, stateID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStateNotFound
			}
			return err
		}
		plateID = st.PlateID

		if err := tx.Where("state_id = ?", stateID).Delete(&catalog.Impression{}).Error; err != nil {
			return err
		}
		return tx.Delete(&catalog.State{}, stateID).Error
	})
	if err != nil {
		return err
	}

	s.recalculate(plateID)
	return nil
}

// NextStateNumber previews the number the next created state will get.
func (s *Store) NextStateNumber(plateID uint) (int, error) {
	return nextStateNumber(s.db, plateID)
}

func nextStateNumber(tx *gorm.DB, plateID uint) (int, error) {
	var max *int
	err := tx.Model(&catalog.State{}).
		Where("plate_id = ?", plateID).
		Select("MAX(state_number)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}

// ------------------------------
// Ordering allow-lists
// ------------------------------

var stateOrderColumns = map[string]bool{
	"id":           true,
	"state_number": true,
	"sort_order":   true,
	"created_at":   true,
}

var impressionOrderColumns = map[string]bool{
	"id":                true,
	"impression_number": true,
	"price":             true,
	"sort_order":        true,
	"created_at":        true,
}

func orderClause(allowed map[string]bool, orderBy, direction string) string {
	if !allowed[orderBy] {
		orderBy = "sort_order"
	}
	if direction != "desc" && direction != "DESC" {
		direction = "ASC"
	} else {
		direction = "DESC"
	}
	return orderBy + " " + direction
}

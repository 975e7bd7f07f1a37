package plates

import (
	"errors"

	"taverne-catalog/internal/domain/catalog"

	"gorm.io/gorm"
)

func plateByID(db *gorm.DB, id uint) (*catalog.Plate, error) {
	var p catalog.Plate
	err := db.Preload("Terms").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

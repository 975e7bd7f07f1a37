package catalog

import "time"

const (
	AvailabilityAvailable = "available"
	// Artist's collection, not for sale.
	AvailabilityArtist = "artist"
	AvailabilitySold   = "sold"
)

// Impression is one numbered print pulled from a state; the sellable unit.
// PlateID is denormalized from the owning state for query convenience and
// must always match it.
type Impression struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	PlateID uint `gorm:"not null;index" json:"plate_id"`
	StateID uint `gorm:"not null;index;uniqueIndex:idx_impressions_state_number,priority:1" json:"state_id"`

	ImpressionNumber int `gorm:"not null;uniqueIndex:idx_impressions_state_number,priority:2" json:"impression_number"`

	ImageID *uint `json:"image_id,omitempty"`

	// Color holds a palette term slug by convention but is stored as
	// free text and never foreign-key validated.
	Color        string  `gorm:"not null;default:''" json:"color"`
	Price        float64 `gorm:"not null;default:0" json:"price"`
	Availability string  `gorm:"not null;default:'available';index" json:"availability"`

	Changes string `json:"changes,omitempty"`
	Notes   string `json:"notes,omitempty"`

	SortOrder int `gorm:"not null;default:0;index" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

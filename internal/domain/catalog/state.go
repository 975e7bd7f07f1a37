package catalog

import "time"

// State is one revision checkpoint ("état") of a plate's matrix.
// State numbers are assigned max+1 per plate and never reused,
// so gaps after deletion are expected.
type State struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	PlateID uint `gorm:"not null;index;uniqueIndex:idx_states_plate_number,priority:1" json:"plate_id"`

	StateNumber int `gorm:"not null;uniqueIndex:idx_states_plate_number,priority:2" json:"state_number"`

	Title       string `gorm:"not null;default:''" json:"title"`
	Excerpt     string `json:"excerpt,omitempty"`
	Description string `json:"description,omitempty"`

	FeaturedImageID *uint `json:"featured_image_id,omitempty"`
	// Advisory only: not validated to belong to this state.
	FeaturedImpressionID *uint `json:"featured_impression_id,omitempty"`

	SortOrder int `gorm:"not null;default:0;index" json:"sort_order"`

	Impressions []Impression `gorm:"foreignKey:StateID;constraint:OnDelete:CASCADE;" json:"impressions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

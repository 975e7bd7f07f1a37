package taxonomy

import "time"

// Term is one classification value inside a plate taxonomy
// (e.g. taxonomy "plate_technique", slug "drypoint").
type Term struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Taxonomy string `gorm:"not null;index;uniqueIndex:idx_terms_taxonomy_slug,priority:1" json:"taxonomy"`
	Slug     string `gorm:"not null;uniqueIndex:idx_terms_taxonomy_slug,priority:2" json:"slug"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

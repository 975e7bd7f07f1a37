package catalog

import (
	"taverne-catalog/internal/domain/taxonomy"
	"time"
)

type Plate struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title string `gorm:"not null" json:"title"`
	Slug  string `gorm:"not null;uniqueIndex" json:"slug"`

	// Dimensions in centimeters
	WidthCM  float64 `gorm:"column:width_cm;not null;default:0" json:"width_cm"`
	HeightCM float64 `gorm:"column:height_cm;not null;default:0" json:"height_cm"`

	BasePrice  float64 `gorm:"not null;default:0" json:"base_price"`
	Year       int     `gorm:"index" json:"year"`
	MatrixSlug string  `json:"matrix_slug,omitempty"`
	StudySlug  string  `json:"study_slug,omitempty"`
	SKU        string  `gorm:"column:sku" json:"sku,omitempty"`

	// Computed columns, maintained by editions.Store / the aggregate
	// recalculation. Never written by request input.
	SizeComputed         string  `gorm:"not null;default:''" json:"size_computed"`
	AreaComputed         float64 `gorm:"not null;default:0" json:"area_computed"`
	TotalStates          int     `gorm:"not null;default:0" json:"total_states"`
	TotalImpressions     int     `gorm:"not null;default:0" json:"total_impressions"`
	AvailableImpressions int     `gorm:"not null;default:0;index" json:"available_impressions"`
	PaletteAggregate     string  `gorm:"not null;default:''" json:"palette_aggregate"`

	// SEO
	SeoTitle       string `json:"seo_title,omitempty"`
	SeoDescription string `json:"seo_description,omitempty"`
	CanonicalURL   string `gorm:"column:canonical_url" json:"canonical_url,omitempty"`
	Noindex        bool   `gorm:"not null;default:false" json:"noindex"`

	Terms []taxonomy.Term `gorm:"many2many:plate_terms;" json:"terms,omitempty"`

	States []State `gorm:"foreignKey:PlateID;constraint:OnDelete:CASCADE;" json:"states,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

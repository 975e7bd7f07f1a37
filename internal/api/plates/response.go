package plates

import (
	"time"

	"taverne-catalog/internal/domain/catalog"
)

type ImpressionDTO struct {
	ID               uint    `json:"id"`
	PlateID          uint    `json:"plate_id"`
	StateID          uint    `json:"state_id"`
	ImpressionNumber int     `json:"impression_number"`
	ImageID          *uint   `json:"image_id,omitempty"`
	Color            string  `json:"color"`
	Price            float64 `json:"price"`
	Availability     string  `json:"availability"`
	Changes          string  `json:"changes"`
	Notes            string  `json:"notes"`
	SortOrder        int     `json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StateDTO struct {
	ID                   uint   `json:"id"`
	PlateID              uint   `json:"plate_id"`
	StateNumber          int    `json:"state_number"`
	Title                string `json:"title"`
	Excerpt              string `json:"excerpt"`
	Description          string `json:"description"`
	FeaturedImageID      *uint  `json:"featured_image_id,omitempty"`
	FeaturedImpressionID *uint  `json:"featured_impression_id,omitempty"`
	SortOrder            int    `json:"sort_order"`

	Impressions []ImpressionDTO `json:"impressions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PlateDTO struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`

	WidthCM      float64 `json:"width_cm"`
	HeightCM     float64 `json:"height_cm"`
	SizeCategory string  `json:"size_category"`
	Area         float64 `json:"area"`

	BasePrice  float64 `json:"base_price"`
	Year       int     `json:"year"`
	MatrixSlug string  `json:"matrix_slug"`
	StudySlug  string  `json:"study_slug"`
	SKU        string  `json:"sku"`

	TotalStates          int    `json:"total_states"`
	TotalImpressions     int    `json:"total_impressions"`
	AvailableImpressions int    `json:"available_impressions"`
	PaletteAggregate     string `json:"palette_aggregate"`

	SeoTitle       string `json:"seo_title"`
	SeoDescription string `json:"seo_description"`
	CanonicalURL   string `json:"canonical_url"`
	Noindex        bool   `json:"noindex"`

	Terms map[string][]string `json:"terms"`

	States []StateDTO `json:"states,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PlateListDTO struct {
	Plates     []PlateDTO `json:"plates"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	Total      int64      `json:"total"`
	TotalPages int        `json:"total_pages"`
}

func toImpressionDTO(i catalog.Impression) ImpressionDTO {
	return ImpressionDTO{
		ID:               i.ID,
		PlateID:          i.PlateID,
		StateID:          i.StateID,
		ImpressionNumber: i.ImpressionNumber,
		ImageID:          i.ImageID,
		Color:            i.Color,
		Price:            i.Price,
		Availability:     i.Availability,
		Changes:          i.Changes,
		Notes:            i.Notes,
		SortOrder:        i.SortOrder,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

func toStateDTO(s catalog.State) StateDTO {
	imps := make([]ImpressionDTO, 0, len(s.Impressions))
	for _, i := range s.Impressions {
		imps = append(imps, toImpressionDTO(i))
	}
	return StateDTO{
		ID:                   s.ID,
		PlateID:              s.PlateID,
		StateNumber:          s.StateNumber,
		Title:                s.Title,
		Excerpt:              s.Excerpt,
		Description:          s.Description,
		FeaturedImageID:      s.FeaturedImageID,
		FeaturedImpressionID: s.FeaturedImpressionID,
		SortOrder:            s.SortOrder,
		Impressions:          imps,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func toPlateDTO(p catalog.Plate) PlateDTO {
	terms := map[string][]string{}
	for _, t := range p.Terms {
		terms[t.Taxonomy] = append(terms[t.Taxonomy], t.Slug)
	}

	states := make([]StateDTO, 0, len(p.States))
	for _, s := range p.States {
		states = append(states, toStateDTO(s))
	}

	return PlateDTO{
		ID:                   p.ID,
		Title:                p.Title,
		Slug:                 p.Slug,
		WidthCM:              p.WidthCM,
		HeightCM:             p.HeightCM,
		SizeCategory:         p.SizeComputed,
		Area:                 p.AreaComputed,
		BasePrice:            p.BasePrice,
		Year:                 p.Year,
		MatrixSlug:           p.MatrixSlug,
		StudySlug:            p.StudySlug,
		SKU:                  p.SKU,
		TotalStates:          p.TotalStates,
		TotalImpressions:     p.TotalImpressions,
		AvailableImpressions: p.AvailableImpressions,
		PaletteAggregate:     p.PaletteAggregate,
		SeoTitle:             p.SeoTitle,
		SeoDescription:       p.SeoDescription,
		CanonicalURL:         p.CanonicalURL,
		Noindex:              p.Noindex,
		Terms:                terms,
		States:               states,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

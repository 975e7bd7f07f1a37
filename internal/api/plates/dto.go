package plates

// ---------- requests

type CreatePlateRequest struct {
	Title string `json:"title" binding:"required"`
	Slug  string `json:"slug"`

	WidthCM   float64 `json:"width_cm"`
	HeightCM  float64 `json:"height_cm"`
	BasePrice float64 `json:"base_price"`
	Year      int     `json:"year"`

	MatrixSlug string `json:"matrix_slug"`
	StudySlug  string `json:"study_slug"`
	SKU        string `json:"sku"`

	SeoTitle       string `json:"seo_title"`
	SeoDescription string `json:"seo_description"`
	Noindex        bool   `json:"noindex"`

	// taxonomy slug -> term slugs, e.g. { "plate_technique": ["drypoint"] }
	Terms map[string][]string `json:"terms"`
}

type UpdatePlateRequest struct {
	Title *string `json:"title"`
	Slug  *string `json:"slug"`

	WidthCM   *float64 `json:"width_cm"`
	HeightCM  *float64 `json:"height_cm"`
	BasePrice *float64 `json:"base_price"`
	Year      *int     `json:"year"`

	MatrixSlug *string `json:"matrix_slug"`
	StudySlug  *string `json:"study_slug"`
	SKU        *string `json:"sku"`

	SeoTitle       *string `json:"seo_title"`
	SeoDescription *string `json:"seo_description"`
	Noindex        *bool   `json:"noindex"`
}

type AssignTermsRequest struct {
	// Full replacement per taxonomy; taxonomies absent from the map keep
	// their current assignments.
	Terms map[string][]string `json:"terms" binding:"required"`
}

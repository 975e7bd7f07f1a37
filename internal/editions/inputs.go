package editions

// Typed create/update inputs. Only non-nil fields are applied; each field
// is sanitized by type when it lands in a row.

type CreateStateInput struct {
	Title                *string `json:"title"`
	Excerpt              *string `json:"excerpt"`
	Description          *string `json:"description"`
	FeaturedImageID      *uint   `json:"featured_image_id"`
	FeaturedImpressionID *uint   `json:"featured_impression_id"`
	SortOrder            *int    `json:"sort_order"`
}

type UpdateStateInput struct {
	Title                *string `json:"title"`
	Excerpt              *string `json:"excerpt"`
	Description          *string `json:"description"`
	FeaturedImageID      *uint   `json:"featured_image_id"`
	FeaturedImpressionID *uint   `json:"featured_impression_id"`
	SortOrder            *int    `json:"sort_order"`
}

// updates builds the column map for a partial state update.
func (in UpdateStateInput) updates() map[string]interface{} {
	u := map[string]interface{}{}
	if in.Title != nil {
		u["title"] = sanitizeText(*in.Title)
	}
	if in.Excerpt != nil {
		u["excerpt"] = sanitizeText(*in.Excerpt)
	}
	if in.Description != nil {
		u["description"] = sanitizeRichText(*in.Description)
	}
	if in.FeaturedImageID != nil {
		u["featured_image_id"] = zeroToNil(*in.FeaturedImageID)
	}
	if in.FeaturedImpressionID != nil {
		u["featured_impression_id"] = zeroToNil(*in.FeaturedImpressionID)
	}
	if in.SortOrder != nil {
		u["sort_order"] = *in.SortOrder
	}
	return u
}

type CreateImpressionInput struct {
	ImageID      *uint    `json:"image_id"`
	Color        *string  `json:"color"`
	Price        *float64 `json:"price"`
	Availability *string  `json:"availability"`
	Changes      *string  `json:"changes"`
	Notes        *string  `json:"notes"`
	SortOrder    *int     `json:"sort_order"`
}

type UpdateImpressionInput struct {
	ImageID      *uint    `json:"image_id"`
	Color        *string  `json:"color"`
	Price        *float64 `json:"price"`
	Availability *string  `json:"availability"`
	Changes      *string  `json:"changes"`
	Notes        *string  `json:"notes"`
	SortOrder    *int     `json:"sort_order"`
}

func (in UpdateImpressionInput) updates() (map[string]interface{}, error) {
	u := map[string]interface{}{}
	if in.ImageID != nil {
		u["image_id"] = zeroToNil(*in.ImageID)
	}
	if in.Color != nil {
		u["color"] = sanitizeText(*in.Color)
	}
	if in.Price != nil {
		u["price"] = nonNegative(*in.Price)
	}
	if in.Availability != nil {
		av, err := normalizeAvailability(*in.Availability)
		if err != nil {
			return nil, err
		}
		u["availability"] = av
	}
	if in.Changes != nil {
		u["changes"] = sanitizeText(*in.Changes)
	}
	if in.Notes != nil {
		u["notes"] = sanitizeText(*in.Notes)
	}
	if in.SortOrder != nil {
		u["sort_order"] = *in.SortOrder
	}
	return u, nil
}

func zeroToNil(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

package gallery

import (
	"taverne-catalog/internal/domain/catalog"
	"taverne-catalog/internal/domain/taxonomy"

	"gorm.io/gorm"
)

// DefaultPageSize matches the public archive grid.
const DefaultPageSize = 20

// FilterScope turns taxonomy selections into a conjunctive plate filter:
// within one taxonomy the selected term slugs OR together, across
// taxonomies the clauses AND together. Keys outside the plate taxonomy
// registry are ignored; no selections means no filtering.
func FilterScope(selections map[string][]string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, tax := range taxonomy.PlateTaxonomies() {
			slugs := selections[tax]
			if len(slugs) == 0 {
				continue
			}
			sub := db.Session(&gorm.Session{NewDB: true}).
				Table("plate_terms").
				Select("plate_terms.plate_id").
				Joins("JOIN terms ON terms.id = plate_terms.term_id").
				Where("terms.taxonomy = ? AND terms.slug IN ?", tax, slugs)
			db = db.Where("plates.id IN (?)", sub)
		}
		return db
	}
}

// AvailableOnly is the public gallery's standing condition: only plates
// with at least one available impression are listed. Callers opt in;
// admin listings skip it.
func AvailableOnly(db *gorm.DB) *gorm.DB {
	return db.Where("plates.available_impressions > 0")
}

type ListOptions struct {
	Page     int
	PageSize int
}

func (o ListOptions) normalized() (page, pageSize int) {
	page = o.Page
	if page < 1 {
		page = 1
	}
	pageSize = o.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// ListPlates runs the paginated gallery query: facet filter plus any
// caller scopes, newest year first. Returns the page and the total
// matching count.
func ListPlates(db *gorm.DB, selections map[string][]string, opts ListOptions, scopes ...func(*gorm.DB) *gorm.DB) ([]catalog.Plate, int64, error) {
	page, pageSize := opts.normalized()

	q := db.Model(&catalog.Plate{}).
		Scopes(FilterScope(selections)).
		Scopes(scopes...)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var plates []catalog.Plate
	err := q.
		Order("plates.year DESC, plates.id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&plates).Error
	return plates, total, err
}

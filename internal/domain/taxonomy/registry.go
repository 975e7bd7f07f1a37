package taxonomy

const (
	Technique = "plate_technique"
	Medium    = "plate_medium"
	Study     = "plate_study"
	Motif     = "plate_motif"
	Traces    = "plate_traces"
	Palette   = "plate_palette"
	Matrix    = "plate_matrix"
	Size      = "plate_size"
	Year      = "plate_year"
	Series    = "plate_series"
)

// PlateTaxonomies returns every taxonomy slug attached to plates,
// in registration order. All are flat (non-hierarchical).
func PlateTaxonomies() []string {
	return []string{
		Technique,
		Medium,
		Study,
		Motif,
		Traces,
		Palette,
		Matrix,
		Size,
		Year,
		Series,
	}
}

func IsPlateTaxonomy(slug string) bool {
	for _, t := range PlateTaxonomies() {
		if t == slug {
			return true
		}
	}
	return false
}

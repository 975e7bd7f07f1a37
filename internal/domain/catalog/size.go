package catalog

// Width thresholds (cm) matching the plate_size taxonomy buckets.
const (
	SizeMediumMinWidth = 38.0
	SizeLargeMinWidth  = 70.0
)

// SizeForWidth classifies a plate by width only; height does not
// factor into the bucket.
func SizeForWidth(widthCM float64) string {
	switch {
	case widthCM < SizeMediumMinWidth:
		return "S"
	case widthCM < SizeLargeMinWidth:
		return "M"
	default:
		return "L"
	}
}

// ComputeSize returns the size label and area (cm²) for a plate's
// dimensions. Either dimension missing means unclassified and zero area.
func ComputeSize(widthCM, heightCM float64) (label string, area float64) {
	if widthCM <= 0 || heightCM <= 0 {
		return "", 0
	}
	return SizeForWidth(widthCM), widthCM * heightCM
}

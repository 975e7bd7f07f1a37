package editions

import (
	"strings"

	"taverne-catalog/internal/domain/catalog"

	"github.com/microcosm-cc/bluemonday"
)

// textPolicy strips all markup from single-line and plain-text fields.
// richPolicy keeps the constrained markup subset allowed in state
// descriptions (links, emphasis, lists and the like).
var (
	textPolicy = bluemonday.StrictPolicy()
	richPolicy = bluemonday.UGCPolicy()
)

func sanitizeText(v string) string {
	return strings.TrimSpace(textPolicy.Sanitize(v))
}

func sanitizeRichText(v string) string {
	return strings.TrimSpace(richPolicy.Sanitize(v))
}

func normalizeAvailability(v string) (string, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case catalog.AvailabilityAvailable, catalog.AvailabilityArtist, catalog.AvailabilitySold:
		return v, nil
	case "":
		return catalog.AvailabilityAvailable, nil
	}
	return "", ErrInvalidAvailability
}

package entity

import "strings"

// Dish is a menu item served by exactly one canteen.
type Dish struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Image   string         `json:"image"`
	Price   float64        `json:"price"`
	Tags    []string       `json:"tags"`
	Canteen *Canteen       `json:"canteen"` // Resolved on read; nil when the referenced canteen is gone.
	Rating  *RatingSummary `json:"rating,omitempty"`
}

// CanteenID returns the id of the referenced canteen, or "" when there is none.
func (d *Dish) CanteenID() string {
	if d == nil || d.Canteen == nil {
		return ""
	}

	return d.Canteen.ID
}

// NormalizeTags trims tags and drops blanks and duplicates, keeping first-seen order.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}

	return normalized
}

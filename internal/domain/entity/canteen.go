// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Canteen is a dining venue on campus. Dishes and reviews point at it.
type Canteen struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Location    string         `json:"location"`
	OpenTime    string         `json:"openTime"`
	Image       string         `json:"image"`
	Description string         `json:"description"`
	Rating      *RatingSummary `json:"rating,omitempty"` // Nil until the first review has been aggregated.
}

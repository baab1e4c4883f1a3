// Package constants holds values shared across layers.
package constants

// EnvDevelop relaxes checks that need real cloud credentials.
const EnvDevelop = "develop"

// Pub/Sub provider names
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Collection names in the document store
const (
	CollectionCanteens = "canteens"
	CollectionDishes   = "dishes"
	CollectionUsers    = "users"
	CollectionReviews  = "reviews"
)

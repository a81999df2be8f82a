// Package constants holds identifiers shared across layers.
package constants

// EnvDevelop is the env.env value of local development, where push auth is not verified.
const EnvDevelop = "develop"

// Pub/Sub providers accepted in config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Entity families handled by the reconciliation engine.
const (
	FamilyPeople       = "people"
	FamilyPromotions   = "promotions"
	FamilyTransfers    = "transfers"
	FamilyTransactions = "transactions"
)

// Families lists every entity family in upload-dependency order.
var Families = []string{FamilyPeople, FamilyPromotions, FamilyTransfers, FamilyTransactions}

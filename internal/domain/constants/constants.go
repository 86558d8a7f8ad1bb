package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers
const (
	PubSubProviderNone   = "none"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Directory events carried over Pub/Sub
const (
	EventEntitlementUpdated = "entitlement.updated"
	EventUserDeleted        = "user.deleted"
	EventListingDeactivated = "listing.deactivated"
	EventListingReactivated = "listing.reactivated"
)

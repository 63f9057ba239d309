// Package constants holds configuration values compared across packages.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Mail providers
const (
	MailProviderSMTP   = "smtp"
	MailProviderPubSub = "pubsub"
	MailProviderLog    = "log"
)

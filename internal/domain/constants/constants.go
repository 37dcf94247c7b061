// Package constants holds provider and environment names read from configuration.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderAMQP   = "amqp"
)

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

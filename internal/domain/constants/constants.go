// Package constants holds shared domain-level constant values.
package constants

// Runtime environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider names accepted by the pubsub config section.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

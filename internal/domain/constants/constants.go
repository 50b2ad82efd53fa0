// Package constants defines shared, domain-wide constant values.
package constants

// Runtime environment names, matching the config files under config/.
const (
	// EnvDevelop is the local development environment.
	EnvDevelop = "develop"
	// EnvStaging is the pre-production environment.
	EnvStaging = "staging"
	// EnvProduction is the production environment.
	EnvProduction = "production"
)

// Pub/Sub provider selection for the event publisher.
const (
	// PubSubProviderGoogle publishes through Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
	// PubSubProviderLocal publishes to a local HTTP endpoint that mimics
	// the Pub/Sub push format.
	PubSubProviderLocal = "local"
)

// Vault provider selection for the credential cipher.
const (
	// VaultProviderLocal encrypts with the locally configured master key.
	VaultProviderLocal = "local"
	// VaultProviderKeeper encrypts through a gocloud.dev secrets keeper.
	VaultProviderKeeper = "keeper"
)

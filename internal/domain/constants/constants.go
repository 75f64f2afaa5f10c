// Package constants holds shared domain constants.
package constants

const (
	// EnvDevelop is the development environment name. Push authentication
	// for Pub/Sub subscriptions is skipped in this environment.
	EnvDevelop = "develop"
)

const (
	// PubSubProviderLocal publishes events to a local HTTP endpoint, used in
	// development and tests.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// UnknownDevice is the device identifier used when the client does not
// report one. The new-device anomaly rule ignores it.
const UnknownDevice = "unknown"

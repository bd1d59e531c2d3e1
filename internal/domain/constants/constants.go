// Package constants defines shared domain-level constants.
package constants

// Pub/Sub provider types for event publishing.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Order event types published to the order topic.
const (
	OrderEventCreated = "order.created"
	OrderEventPaid    = "order.paid"
)

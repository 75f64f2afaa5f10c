package service

import (
	"context"
)

// ActivityEvent is a user activity observation emitted after a business
// handler completes. It feeds the anomaly engine and, when Pub/Sub is
// configured, downstream analytics consumers.
type ActivityEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	UserID    string `json:"user_id"`
	Action    string `json:"action"`
	Resource  string `json:"resource"`
	IP        string `json:"ip"`
	Device    string `json:"device"`
}

// EventPublisher defines the interface for publishing activity events to a
// message queue.
type EventPublisher interface {
	// PublishActivityEvent publishes an activity event for async processing.
	PublishActivityEvent(ctx context.Context, event *ActivityEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}

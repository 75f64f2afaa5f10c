package usecase

import (
	"context"

	"caregate/internal/domain/service"
)

// ActivityUsecase is the anomaly detection engine. It observes user
// activity, scores each observation against the detection rules and reacts
// with alerts and automatic suspension.
type ActivityUsecase interface {
	// Track records the event asynchronously. It returns immediately; the
	// evaluation runs on a detached goroutine with its own error boundary,
	// so a tracking failure can never fail the request that produced the
	// event.
	Track(ctx context.Context, event *service.ActivityEvent)

	// TrackAndEvaluate appends the event to the activity log and runs the
	// scoring rules synchronously. It is the worker entry point; Track
	// delegates to it.
	TrackAndEvaluate(ctx context.Context, event *service.ActivityEvent) error
}

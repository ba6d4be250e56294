package ports

import (
	"context"

	"tableservice/internal/core/events"
)

// EventPublisher fans an order lifecycle event out to every connected
// viewer. Delivery is fire-and-forget and at-most-once: publishing never
// fails from the caller's point of view, and per-connection failures are
// the publisher's problem, not the command's.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event)
}

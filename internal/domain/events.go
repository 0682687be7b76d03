package domain

import "context"

// Event is an audit record of a completed (or deliberately skipped)
// mutation against the remote portal.
type Event struct {
	Type    string
	Payload map[string]any
}

// EventBus fans events out to the audit log. Publishing never blocks
// the request that produced the event.
type EventBus interface {
	Publish(ctx context.Context, e Event)
}

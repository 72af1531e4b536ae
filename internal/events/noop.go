package events

import "context"

// Noop is used when no broker is configured; events are dropped.
type Noop struct{}

func (Noop) Publish(context.Context, string, any) error { return nil }

var _ Publisher = Noop{}

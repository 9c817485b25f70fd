package ports

import "context"

// Notifier surfaces user-visible messages (checkout confirmations, empty
// selection warnings). Display timing is the notifier's concern.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// NoopNotifier is a safe default when callers do not need notifications.
var NoopNotifier Notifier = noopNotifier{}

type noopNotifier struct{}

func (noopNotifier) Notify(_ context.Context, _ string) {}

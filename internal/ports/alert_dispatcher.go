package ports

import "context"

// Contract for the emergency-alert dispatcher (SMS or equivalent).
// Returns the number of recipients the message was sent to.
type AlertDispatcher interface {
	Dispatch(ctx context.Context, phoneNumbers []string, message string) (int, error)
}

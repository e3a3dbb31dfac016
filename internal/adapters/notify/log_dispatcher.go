package notify

import (
	"context"
	"errors"
	"log"
	"strings"
)

// LogDispatcher writes alerts to the log instead of sending them. It
// stands in when no SMS gateway is configured, so local runs keep the
// SOS flow exercisable end to end.
type LogDispatcher struct{}

func NewLogDispatcher() *LogDispatcher { return &LogDispatcher{} }

func (l *LogDispatcher) Dispatch(ctx context.Context, phoneNumbers []string, message string) (int, error) {
	if message == "" {
		return 0, errors.New("dispatch alert: message is empty")
	}

	sent := 0
	for _, to := range phoneNumbers {
		if strings.TrimSpace(to) == "" {
			continue
		}
		log.Printf("alert (log only) to=%s message=%q", to, message)
		sent++
	}
	if sent == 0 {
		return 0, errors.New("dispatch alert: no recipients given")
	}
	return sent, nil
}

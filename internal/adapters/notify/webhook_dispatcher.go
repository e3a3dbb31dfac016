package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"safe-route-service/internal/platform/obs"
)

// WebhookDispatcher delivers emergency alerts by posting one JSON
// payload per recipient to a configured webhook (an SMS gateway in
// production). Per-recipient failures are logged and skipped; the
// dispatch only fails outright when nobody could be reached.
type WebhookDispatcher struct {
	session *http.Client
	url     string
}

func NewWebhookDispatcher(url string) (*WebhookDispatcher, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("alert webhook url is empty")
	}
	return &WebhookDispatcher{
		session: &http.Client{Timeout: 5 * time.Second},
		url:     url,
	}, nil
}

type alertPayload struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// Dispatch sends the message to every phone number and returns how many
// deliveries were accepted.
func (w *WebhookDispatcher) Dispatch(ctx context.Context, phoneNumbers []string, message string) (_ int, err error) {
	defer obs.Time(ctx, "alerts.Dispatch")(&err)

	if message == "" {
		return 0, errors.New("dispatch alert: message is empty")
	}

	sent := 0
	for _, to := range phoneNumbers {
		to = strings.TrimSpace(to)
		if to == "" {
			continue
		}
		if err := w.send(ctx, to, message); err != nil {
			log.Printf("dispatch alert: recipient failed to=%s: %v", to, err)
			continue
		}
		sent++
	}

	if sent == 0 {
		return 0, errors.New("dispatch alert: no recipient could be reached")
	}
	return sent, nil
}

func (w *WebhookDispatcher) send(ctx context.Context, to, message string) error {
	payload, err := json.Marshal(alertPayload{To: to, Message: message})
	if err != nil {
		return fmt.Errorf("marshal alert payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.session.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("alert webhook status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return nil
}

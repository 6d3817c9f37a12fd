// Package notify posts operational events to a configured webhook URL,
// typically a Slack-compatible incoming webhook used by venue managers.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Notifier is an outbound webhook client. A nil *Notifier is valid and
// drops every event, so callers never need to branch on configuration.
type Notifier struct {
	webhookURL string
	httpClient *http.Client
}

// New creates a notifier for the given webhook URL. An empty URL returns
// nil, which disables notifications.
func New(webhookURL string) *Notifier {
	if webhookURL == "" {
		return nil
	}
	return &Notifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Event is one notification payload.
type Event struct {
	Type    string            `json:"type"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	SentAt  time.Time         `json:"sent_at"`
}

// Send posts an event to the webhook. Non-2xx responses are errors.
func (n *Notifier) Send(ctx context.Context, event Event) error {
	if n == nil {
		return nil
	}

	event.SentAt = time.Now()
	bodyBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal webhook event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", n.webhookURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

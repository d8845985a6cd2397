package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Event names sent to the webhook.
const (
	EventTriggered = "triggered"
	EventSnoozed   = "snoozed"
	EventStopped   = "stopped"
)

// Client posts alarm events to a configured webhook URL.
type Client struct {
	url        string
	httpClient *http.Client
}

// Payload is the JSON body of a webhook notification.
type Payload struct {
	Event  string    `json:"event"`
	Alarm  string    `json:"alarm"`
	RingAt time.Time `json:"ring_at"`
	SentAt time.Time `json:"sent_at"`
}

// NewClient creates a webhook client for the given URL.
func NewClient(url string) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send posts one alarm event. Failures are returned, not retried; the watch
// loop logs and keeps going.
func (c *Client) Send(event, alarmName string, ringAt time.Time) error {
	payload := Payload{
		Event:  event,
		Alarm:  alarmName,
		RingAt: ringAt,
		SentAt: time.Now(),
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	log.Debug().
		Str("event", event).
		Str("alarm", alarmName).
		Str("url", c.url).
		Msg("Webhook notification sent")
	return nil
}

package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// SheetPublisher posts event payloads to the spreadsheet webhook configured in
// the shop settings. The URL is resolved on every publish, so settings changes
// take effect immediately. An empty URL disables publishing.
type SheetPublisher struct {
	client *resty.Client
	url    func() string
}

// NewSheetPublisher creates a publisher that resolves the webhook URL through
// urlFn at publish time.
func NewSheetPublisher(urlFn func() string, timeout time.Duration) *SheetPublisher {
	return &SheetPublisher{
		client: resty.New().SetTimeout(timeout),
		url:    urlFn,
	}
}

// Publish delivers the event payload to the configured webhook.
// No-op when no webhook URL is configured.
func (p *SheetPublisher) Publish(ctx context.Context, event Event) error {
	url := p.url()
	if url == "" {
		return nil
	}

	data, err := event.Payload()
	if err != nil {
		return fmt.Errorf("failed to get event payload: %w", err)
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		Post(url)
	if err != nil {
		return fmt.Errorf("failed to post %s event: %w", event.Subject(), err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook rejected %s event: status %d", event.Subject(), resp.StatusCode())
	}
	return nil
}

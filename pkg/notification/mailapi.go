package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MailAPIConfig holds settings for the HTTP mail-sending API transport.
type MailAPIConfig struct {
	// BaseURL is the send endpoint, e.g. https://api.resend.com/emails.
	BaseURL string
	APIKey  string
	From    string
}

// MailAPIDeliverer delivers email through an HTTP mail API with
// bearer-token auth and a JSON {from, to, subject, html} body.
type MailAPIDeliverer struct {
	config     MailAPIConfig
	httpClient *http.Client
}

// NewMailAPIDeliverer creates an HTTP mail API deliverer from the given config.
func NewMailAPIDeliverer(config MailAPIConfig) *MailAPIDeliverer {
	return &MailAPIDeliverer{
		config:     config,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (d *MailAPIDeliverer) Deliver(ctx context.Context, to, subject, html string) error {
	payload := map[string]string{
		"from":    d.config.From,
		"to":      to,
		"subject": subject,
		"html":    html,
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.config.BaseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+d.config.APIKey)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return fmt.Errorf("%w: mail API status %d: %s", ErrDeliveryFailed, resp.StatusCode, string(body))
	}
	return nil
}

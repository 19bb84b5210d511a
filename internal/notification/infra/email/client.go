package email

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client delivers emails through an HTTP mail provider. It implements
// domain.EmailSender.
type Client struct {
	baseURL string
	apiKey  string
	from    string
	client  *resty.Client
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

func NewClient(baseURL, apiKey, from string) *Client {
	client := resty.New()
	client.SetTimeout(30 * time.Second)

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		from:    from,
		client:  client,
	}
}

// Send posts one message to the provider. Every recipient goes in a single
// request; the provider handles per-recipient delivery.
func (c *Client) Send(ctx context.Context, subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return nil
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetBody(sendRequest{
			From:    c.from,
			To:      recipients,
			Subject: subject,
			Text:    body,
		}).
		Post(c.baseURL + "/messages")
	if err != nil {
		return fmt.Errorf("email provider request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusAccepted {
		return fmt.Errorf("email provider returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}

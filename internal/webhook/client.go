// Package webhook calls the generic contact webhook used by /add.
package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

var ErrUnexpectedStatus = errors.New("webhook returned non-2xx status")

const statusSuccess = "success"

// Response is the JSON body the webhook answers with.
type Response struct {
	Status string `json:"status"`
}

// OK reports whether the webhook accepted the contact.
func (r *Response) OK() bool {
	return r.Status == statusSuccess
}

type Client struct {
	url    string
	client *resty.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &Client{
		url:    url,
		client: client,
	}
}

// AddContact sends name and email as query parameters. Query parameters
// already present on the configured URL are kept.
func (c *Client) AddContact(ctx context.Context, requestID, name, email string) (*Response, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID).
		SetQueryParam("name", name).
		SetQueryParam("email", email).
		Get(c.url)

	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	var out Response
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &out, nil
}

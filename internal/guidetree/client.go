// Package guidetree is a client for the internal flow-graph API that stores
// guide trees as linked nodes.
package guidetree

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var ErrUnexpectedStatus = errors.New("guide tree API returned non-2xx status")

const (
	addNodePath    = "/guidetree/add-node"
	appendNodePath = "/guidetree/append-node"
)

type Client struct {
	flowID string
	client *resty.Client
}

func NewClient(apiHost, flowID string, timeout time.Duration) *Client {
	client := resty.New().SetBaseURL(strings.TrimRight(apiHost, "/"))
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &Client{
		flowID: flowID,
		client: client,
	}
}

// AddNode creates a node at the root of the configured flow.
func (c *Client) AddNode(ctx context.Context, requestID string, telegramID int64, node Node) (*Response, error) {
	return c.put(ctx, requestID, addNodePath, telegramID, NodeRequest{
		FlowID: c.flowID,
		Node:   node,
	})
}

// AppendNode links a node after previousNodeID.
func (c *Client) AppendNode(ctx context.Context, requestID string, telegramID int64, previousNodeID string, node Node) (*Response, error) {
	return c.put(ctx, requestID, appendNodePath, telegramID, NodeRequest{
		FlowID:         c.flowID,
		PreviousNodeID: previousNodeID,
		Node:           node,
	})
}

func (c *Client) put(ctx context.Context, requestID, path string, telegramID int64, body NodeRequest) (*Response, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-ID", requestID).
		SetQueryParam("telegramID", strconv.FormatInt(telegramID, 10)).
		SetBody(body).
		Put(path)

	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode(), string(resp.Body()))
	}

	var out Response
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &out, nil
}

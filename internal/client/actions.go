package client

import (
	"context"
	"fmt"

	"github.com/thecompaniesapi/tca-go/pkg/tca"
)

// ActionsClient implements tca.ActionsClient.
type ActionsClient struct {
	client *Client
}

// List implements tca.ActionsClient.List.
func (c *ActionsClient) List(ctx context.Context, args map[string]interface{}) (*tca.ActionsResult, error) {
	var result tca.ActionsResult

	err := c.client.call(ctx, "fetchActions", args, &result)
	if err != nil {
		return nil, fmt.Errorf("fetching actions: %w", err)
	}

	return &result, nil
}

// Request implements tca.ActionsClient.Request.
func (c *ActionsClient) Request(ctx context.Context, args map[string]interface{}) (*tca.ActionsResult, error) {
	var result tca.ActionsResult

	err := c.client.call(ctx, "requestAction", args, &result)
	if err != nil {
		return nil, fmt.Errorf("requesting action: %w", err)
	}

	return &result, nil
}

// Retry implements tca.ActionsClient.Retry.
func (c *ActionsClient) Retry(ctx context.Context, actionID int64) (*tca.Action, error) {
	var action tca.Action

	err := c.client.call(ctx, "retryAction", map[string]interface{}{"actionId": actionID}, &action)
	if err != nil {
		return nil, fmt.Errorf("retrying action: %w", err)
	}

	return &action, nil
}

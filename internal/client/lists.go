package client

import (
	"context"
	"fmt"

	"github.com/thecompaniesapi/tca-go/pkg/tca"
)

// ListsClient implements tca.ListsClient.
type ListsClient struct {
	client *Client
}

// List implements tca.ListsClient.List.
func (c *ListsClient) List(ctx context.Context, args map[string]interface{}) (*tca.ListsResult, error) {
	var result tca.ListsResult

	err := c.client.call(ctx, "fetchLists", args, &result)
	if err != nil {
		return nil, fmt.Errorf("fetching lists: %w", err)
	}

	return &result, nil
}

// Create implements tca.ListsClient.Create.
func (c *ListsClient) Create(ctx context.Context, args map[string]interface{}) (*tca.List, error) {
	var list tca.List

	err := c.client.call(ctx, "createList", args, &list)
	if err != nil {
		return nil, fmt.Errorf("creating list: %w", err)
	}

	return &list, nil
}

// Update implements tca.ListsClient.Update.
func (c *ListsClient) Update(ctx context.Context, listID int64, args map[string]interface{}) (*tca.List, error) {
	var list tca.List

	err := c.client.call(ctx, "updateList", withArg(args, "listId", listID), &list)
	if err != nil {
		return nil, fmt.Errorf("updating list: %w", err)
	}

	return &list, nil
}

// Delete implements tca.ListsClient.Delete.
func (c *ListsClient) Delete(ctx context.Context, listID int64) error {
	err := c.client.call(ctx, "deleteList", map[string]interface{}{"listId": listID}, nil)
	if err != nil {
		return fmt.Errorf("deleting list: %w", err)
	}

	return nil
}

// Companies implements tca.ListsClient.Companies.
func (c *ListsClient) Companies(ctx context.Context, listID int64, args map[string]interface{}) (*tca.CompanySearchResult, error) {
	var result tca.CompanySearchResult

	err := c.client.call(ctx, "fetchCompaniesInList", withArg(args, "listId", listID), &result)
	if err != nil {
		return nil, fmt.Errorf("fetching companies in list: %w", err)
	}

	return &result, nil
}

// ToggleCompanies implements tca.ListsClient.ToggleCompanies.
func (c *ListsClient) ToggleCompanies(ctx context.Context, listID int64, args map[string]interface{}) (*tca.List, error) {
	var list tca.List

	err := c.client.call(ctx, "toggleCompaniesInList", withArg(args, "listId", listID), &list)
	if err != nil {
		return nil, fmt.Errorf("toggling companies in list: %w", err)
	}

	return &list, nil
}

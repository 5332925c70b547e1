package client

import (
	"context"
	"fmt"

	"github.com/thecompaniesapi/tca-go/pkg/tca"
)

// IndustriesClient implements tca.IndustriesClient.
type IndustriesClient struct {
	client *Client
}

// List implements tca.IndustriesClient.List.
func (c *IndustriesClient) List(ctx context.Context, args map[string]interface{}) (*tca.IndustriesResult, error) {
	var result tca.IndustriesResult

	err := c.client.call(ctx, "fetchIndustries", args, &result)
	if err != nil {
		return nil, fmt.Errorf("fetching industries: %w", err)
	}

	return &result, nil
}

// SearchSimilar implements tca.IndustriesClient.SearchSimilar.
func (c *IndustriesClient) SearchSimilar(ctx context.Context, args map[string]interface{}) (*tca.IndustriesResult, error) {
	var result tca.IndustriesResult

	err := c.client.call(ctx, "searchIndustriesSimilar", args, &result)
	if err != nil {
		return nil, fmt.Errorf("searching similar industries: %w", err)
	}

	return &result, nil
}

// TechnologiesClient implements tca.TechnologiesClient.
type TechnologiesClient struct {
	client *Client
}

// List implements tca.TechnologiesClient.List.
func (c *TechnologiesClient) List(ctx context.Context, args map[string]interface{}) (*tca.TechnologiesResult, error) {
	var result tca.TechnologiesResult

	err := c.client.call(ctx, "fetchTechnologies", args, &result)
	if err != nil {
		return nil, fmt.Errorf("fetching technologies: %w", err)
	}

	return &result, nil
}

// LocationsClient implements tca.LocationsClient.
type LocationsClient struct {
	client *Client
}

// Cities implements tca.LocationsClient.Cities.
func (c *LocationsClient) Cities(ctx context.Context, args map[string]interface{}) (*tca.CitiesResult, error) {
	var result tca.CitiesResult

	err := c.client.call(ctx, "fetchCities", args, &result)
	if err != nil {
		return nil, fmt.Errorf("fetching cities: %w", err)
	}

	return &result, nil
}

// Counties implements tca.LocationsClient.Counties.
func (c *LocationsClient) Counties(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	result, err := c.client.Invoke(ctx, "fetchCounties", args)
	if err != nil {
		return nil, fmt.Errorf("fetching counties: %w", err)
	}

	return result, nil
}

// Countries implements tca.LocationsClient.Countries.
func (c *LocationsClient) Countries(ctx context.Context, args map[string]interface{}) (*tca.CountriesResult, error) {
	var result tca.CountriesResult

	err := c.client.call(ctx, "fetchCountries", args, &result)
	if err != nil {
		return nil, fmt.Errorf("fetching countries: %w", err)
	}

	return &result, nil
}

// Continents implements tca.LocationsClient.Continents.
func (c *LocationsClient) Continents(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	result, err := c.client.Invoke(ctx, "fetchContinents", args)
	if err != nil {
		return nil, fmt.Errorf("fetching continents: %w", err)
	}

	return result, nil
}

// States implements tca.LocationsClient.States.
func (c *LocationsClient) States(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	result, err := c.client.Invoke(ctx, "fetchStates", args)
	if err != nil {
		return nil, fmt.Errorf("fetching states: %w", err)
	}

	return result, nil
}

// JobTitlesClient implements tca.JobTitlesClient.
type JobTitlesClient struct {
	client *Client
}

// Enrich implements tca.JobTitlesClient.Enrich.
func (c *JobTitlesClient) Enrich(ctx context.Context, args map[string]interface{}) (*tca.JobTitle, error) {
	var title tca.JobTitle

	err := c.client.call(ctx, "fetchJobTitles", args, &title)
	if err != nil {
		return nil, fmt.Errorf("enriching job title: %w", err)
	}

	return &title, nil
}

// TeamsClient implements tca.TeamsClient.
type TeamsClient struct {
	client *Client
}

// Get implements tca.TeamsClient.Get.
func (c *TeamsClient) Get(ctx context.Context, teamID int64) (*tca.Team, error) {
	var team tca.Team

	err := c.client.call(ctx, "fetchTeam", map[string]interface{}{"teamId": teamID}, &team)
	if err != nil {
		return nil, fmt.Errorf("fetching team: %w", err)
	}

	return &team, nil
}

// Update implements tca.TeamsClient.Update.
func (c *TeamsClient) Update(ctx context.Context, teamID int64, args map[string]interface{}) (*tca.Team, error) {
	var team tca.Team

	err := c.client.call(ctx, "updateTeam", withArg(args, "teamId", teamID), &team)
	if err != nil {
		return nil, fmt.Errorf("updating team: %w", err)
	}

	return &team, nil
}

// UtilitiesClient implements tca.UtilitiesClient.
type UtilitiesClient struct {
	client *Client
}

// FetchHealth implements tca.UtilitiesClient.FetchHealth.
func (c *UtilitiesClient) FetchHealth(ctx context.Context) (interface{}, error) {
	result, err := c.client.Invoke(ctx, "fetchApiHealth", nil)
	if err != nil {
		return nil, fmt.Errorf("fetching API health: %w", err)
	}

	return result, nil
}

// FetchOpenAPISchema implements tca.UtilitiesClient.FetchOpenAPISchema.
func (c *UtilitiesClient) FetchOpenAPISchema(ctx context.Context) (interface{}, error) {
	result, err := c.client.Invoke(ctx, "fetchOpenApiSchema", nil)
	if err != nil {
		return nil, fmt.Errorf("fetching OpenAPI schema: %w", err)
	}

	return result, nil
}

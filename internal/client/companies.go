package client

import (
	"context"
	"fmt"

	"github.com/thecompaniesapi/tca-go/pkg/tca"
)

// CompaniesClient implements tca.CompaniesClient.
type CompaniesClient struct {
	client *Client
}

// Search implements tca.CompaniesClient.Search.
func (c *CompaniesClient) Search(ctx context.Context, args map[string]interface{}) (*tca.CompanySearchResult, error) {
	var result tca.CompanySearchResult

	err := c.client.call(ctx, "searchCompanies", args, &result)
	if err != nil {
		return nil, fmt.Errorf("searching companies: %w", err)
	}

	return &result, nil
}

// SearchPost implements tca.CompaniesClient.SearchPost.
func (c *CompaniesClient) SearchPost(ctx context.Context, args map[string]interface{}) (*tca.CompanySearchResult, error) {
	var result tca.CompanySearchResult

	err := c.client.call(ctx, "searchCompaniesPost", args, &result)
	if err != nil {
		return nil, fmt.Errorf("searching companies: %w", err)
	}

	return &result, nil
}

// SearchByName implements tca.CompaniesClient.SearchByName.
func (c *CompaniesClient) SearchByName(ctx context.Context, args map[string]interface{}) (*tca.CompanySearchResult, error) {
	var result tca.CompanySearchResult

	err := c.client.call(ctx, "searchCompaniesByName", args, &result)
	if err != nil {
		return nil, fmt.Errorf("searching companies by name: %w", err)
	}

	return &result, nil
}

// SearchByPrompt implements tca.CompaniesClient.SearchByPrompt.
func (c *CompaniesClient) SearchByPrompt(ctx context.Context, args map[string]interface{}) (*tca.CompanySearchResult, error) {
	var result tca.CompanySearchResult

	err := c.client.call(ctx, "searchCompaniesByPrompt", args, &result)
	if err != nil {
		return nil, fmt.Errorf("searching companies by prompt: %w", err)
	}

	return &result, nil
}

// SearchSimilar implements tca.CompaniesClient.SearchSimilar.
func (c *CompaniesClient) SearchSimilar(ctx context.Context, args map[string]interface{}) (*tca.CompanySearchResult, error) {
	var result tca.CompanySearchResult

	err := c.client.call(ctx, "searchSimilarCompanies", args, &result)
	if err != nil {
		return nil, fmt.Errorf("searching similar companies: %w", err)
	}

	return &result, nil
}

// Count implements tca.CompaniesClient.Count.
func (c *CompaniesClient) Count(ctx context.Context, args map[string]interface{}) (int64, error) {
	var count tca.CompanyCount

	err := c.client.call(ctx, "countCompanies", args, &count)
	if err != nil {
		return 0, fmt.Errorf("counting companies: %w", err)
	}

	return count.Count, nil
}

// Get implements tca.CompaniesClient.Get.
func (c *CompaniesClient) Get(ctx context.Context, domain string, args map[string]interface{}) (*tca.Company, error) {
	var company tca.Company

	err := c.client.call(ctx, "fetchCompany", withArg(args, "domain", domain), &company)
	if err != nil {
		return nil, fmt.Errorf("fetching company: %w", err)
	}

	return &company, nil
}

// GetEmailPatterns implements tca.CompaniesClient.GetEmailPatterns.
func (c *CompaniesClient) GetEmailPatterns(ctx context.Context, domain string, args map[string]interface{}) (*tca.EmailPatternsResult, error) {
	var patterns tca.EmailPatternsResult

	err := c.client.call(ctx, "fetchCompanyEmailPatterns", withArg(args, "domain", domain), &patterns)
	if err != nil {
		return nil, fmt.Errorf("fetching email patterns: %w", err)
	}

	return &patterns, nil
}

// Ask implements tca.CompaniesClient.Ask.
func (c *CompaniesClient) Ask(ctx context.Context, domain string, args map[string]interface{}) (*tca.Answer, error) {
	var answer tca.Answer

	err := c.client.call(ctx, "askCompany", withArg(args, "domain", domain), &answer)
	if err != nil {
		return nil, fmt.Errorf("asking company: %w", err)
	}

	return &answer, nil
}

// GetContext implements tca.CompaniesClient.GetContext.
func (c *CompaniesClient) GetContext(ctx context.Context, domain string) (interface{}, error) {
	result, err := c.client.Invoke(ctx, "fetchCompanyContext", map[string]interface{}{"domain": domain})
	if err != nil {
		return nil, fmt.Errorf("fetching company context: %w", err)
	}

	return result, nil
}

// GetAnalytics implements tca.CompaniesClient.GetAnalytics.
func (c *CompaniesClient) GetAnalytics(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	result, err := c.client.Invoke(ctx, "fetchCompaniesAnalytics", args)
	if err != nil {
		return nil, fmt.Errorf("fetching companies analytics: %w", err)
	}

	return result, nil
}

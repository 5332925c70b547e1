package tca

import "context"

// Client is the entry point to The Companies API.
//
// Invoke is the dynamic surface: any operation in the table can be called by
// name. The resource accessors expose typed methods generated from the same
// operations table; both routes share one dispatch path.
type Client interface {
	// Invoke resolves operationName in the operations table, substitutes path
	// parameters from args, routes the remaining args to the query string
	// (GET/DELETE) or the JSON body (POST/PUT/PATCH), and returns the decoded
	// JSON response. A successful response with a non-JSON body is returned
	// as *RawPayload instead of an error.
	Invoke(ctx context.Context, operationName string, args map[string]interface{}) (interface{}, error)

	// Operations returns the table this client dispatches against.
	Operations() Operations

	Companies() CompaniesClient
	Lists() ListsClient
	Actions() ActionsClient
	Industries() IndustriesClient
	Technologies() TechnologiesClient
	Locations() LocationsClient
	JobTitles() JobTitlesClient
	Teams() TeamsClient
	Utilities() UtilitiesClient
}

// CompaniesClient provides access to company search and enrichment.
type CompaniesClient interface {
	// Search queries companies with simple parameters via GET.
	Search(ctx context.Context, args map[string]interface{}) (*CompanySearchResult, error)
	// SearchPost queries companies with complex filter payloads via POST.
	SearchPost(ctx context.Context, args map[string]interface{}) (*CompanySearchResult, error)
	// SearchByName matches companies by name rather than domain.
	SearchByName(ctx context.Context, args map[string]interface{}) (*CompanySearchResult, error)
	// SearchByPrompt runs a natural-language search.
	SearchByPrompt(ctx context.Context, args map[string]interface{}) (*CompanySearchResult, error)
	// SearchSimilar finds companies similar to the given domains.
	SearchSimilar(ctx context.Context, args map[string]interface{}) (*CompanySearchResult, error)
	// Count returns the number of companies matching the query.
	Count(ctx context.Context, args map[string]interface{}) (int64, error)
	// Get fetches a single company by domain.
	Get(ctx context.Context, domain string, args map[string]interface{}) (*Company, error)
	// GetEmailPatterns fetches the email patterns of a company.
	GetEmailPatterns(ctx context.Context, domain string, args map[string]interface{}) (*EmailPatternsResult, error)
	// Ask asks a natural-language question about a company.
	Ask(ctx context.Context, domain string, args map[string]interface{}) (*Answer, error)
	// GetContext fetches the generated analyst context of a company.
	GetContext(ctx context.Context, domain string) (interface{}, error)
	// GetAnalytics aggregates analytics across companies matching the query.
	GetAnalytics(ctx context.Context, args map[string]interface{}) (interface{}, error)
}

// ListsClient provides access to saved company lists.
type ListsClient interface {
	List(ctx context.Context, args map[string]interface{}) (*ListsResult, error)
	Create(ctx context.Context, args map[string]interface{}) (*List, error)
	Update(ctx context.Context, listID int64, args map[string]interface{}) (*List, error)
	Delete(ctx context.Context, listID int64) error
	Companies(ctx context.Context, listID int64, args map[string]interface{}) (*CompanySearchResult, error)
	ToggleCompanies(ctx context.Context, listID int64, args map[string]interface{}) (*List, error)
}

// ActionsClient provides access to asynchronous enrichment actions.
type ActionsClient interface {
	List(ctx context.Context, args map[string]interface{}) (*ActionsResult, error)
	Request(ctx context.Context, args map[string]interface{}) (*ActionsResult, error)
	Retry(ctx context.Context, actionID int64) (*Action, error)
}

// IndustriesClient provides access to industry aggregates.
type IndustriesClient interface {
	List(ctx context.Context, args map[string]interface{}) (*IndustriesResult, error)
	SearchSimilar(ctx context.Context, args map[string]interface{}) (*IndustriesResult, error)
}

// TechnologiesClient provides access to technology aggregates.
type TechnologiesClient interface {
	List(ctx context.Context, args map[string]interface{}) (*TechnologiesResult, error)
}

// LocationsClient provides access to location aggregates.
type LocationsClient interface {
	Cities(ctx context.Context, args map[string]interface{}) (*CitiesResult, error)
	Counties(ctx context.Context, args map[string]interface{}) (interface{}, error)
	Countries(ctx context.Context, args map[string]interface{}) (*CountriesResult, error)
	Continents(ctx context.Context, args map[string]interface{}) (interface{}, error)
	States(ctx context.Context, args map[string]interface{}) (interface{}, error)
}

// JobTitlesClient provides access to job title enrichment.
type JobTitlesClient interface {
	Enrich(ctx context.Context, args map[string]interface{}) (*JobTitle, error)
}

// TeamsClient provides access to the caller's team account.
type TeamsClient interface {
	Get(ctx context.Context, teamID int64) (*Team, error)
	Update(ctx context.Context, teamID int64, args map[string]interface{}) (*Team, error)
}

// UtilitiesClient provides access to the API's utility endpoints.
type UtilitiesClient interface {
	// FetchHealth issues GET / and returns the parsed body unchanged.
	FetchHealth(ctx context.Context) (interface{}, error)
	// FetchOpenAPISchema fetches the OpenAPI document the operations table is
	// generated from.
	FetchOpenAPISchema(ctx context.Context) (interface{}, error)
}

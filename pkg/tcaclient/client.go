// Package tcaclient provides the entry point for creating Companies API
// clients.
package tcaclient

import (
	"fmt"
	"strings"

	"github.com/thecompaniesapi/tca-go/internal/client"
	"github.com/thecompaniesapi/tca-go/internal/constants"
	"github.com/thecompaniesapi/tca-go/pkg/tca"
)

// New creates a new Companies API client.
//
// The API token is required; construction fails before any network activity
// when it is missing. The base URL defaults to the production endpoint and is
// normalized: trailing slash trimmed, "https://" prepended when no scheme is
// present.
func New(config *tca.Config) (tca.Client, error) {
	if config == nil {
		return nil, tca.ErrConfigRequired
	}

	if config.APIToken == "" {
		return nil, tca.ErrAPITokenRequired
	}

	baseURL := config.APIBaseURL
	if baseURL == "" {
		baseURL = constants.DefaultAPIBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.APIBaseURL = baseURL

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return apiClient, nil
}

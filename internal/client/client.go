// Package client implements the tca.Client interface: dynamic operation
// dispatch over the generated operations table, plus the typed resource
// clients layered on top of it.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"strings"
	"sync"

	"github.com/thecompaniesapi/tca-go/internal/constants"
	"github.com/thecompaniesapi/tca-go/internal/http"
	"github.com/thecompaniesapi/tca-go/pkg/tca"
)

// Client implements the tca.Client interface.
type Client struct {
	httpClient *http.Client
	ops        tca.Operations
	logger     tca.Logger

	// resolved caches invokers per operation name. Population is idempotent,
	// so concurrent resolution of the same name is harmless.
	resolved sync.Map

	companies    tca.CompaniesClient
	lists        tca.ListsClient
	actions      tca.ActionsClient
	industries   tca.IndustriesClient
	technologies tca.TechnologiesClient
	locations    tca.LocationsClient
	jobTitles    tca.JobTitlesClient
	teams        tca.TeamsClient
	utilities    tca.UtilitiesClient
}

// invoker executes one resolved operation against the transport.
type invoker func(ctx context.Context, args map[string]interface{}) (*http.Response, error)

// New creates a new client. The config is expected to be validated and
// normalized by tcaclient.New; the token check here is a backstop so the
// internal constructor cannot be used to build an unauthenticated client.
func New(config *tca.Config) (*Client, error) {
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

	ops := config.Operations
	if ops == nil {
		ops = tca.DefaultOperations
	}

	httpClient := http.NewClient(baseURL, config.APIToken, buildHTTPOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		ops:        ops,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// buildHTTPOptions maps the public config onto transport options.
func buildHTTPOptions(config *tca.Config) []http.Option {
	var opts []http.Option

	if config.VisitorID != "" {
		opts = append(opts, http.WithVisitorID(config.VisitorID))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		opts = append(opts, http.WithTimeout(config.Timeout))
	}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.RetryMax != 0 || config.RetryWaitMin > 0 || config.RetryWaitMax > 0 {
		retryMax := config.RetryMax
		if retryMax == 0 {
			retryMax = constants.DefaultRetryMax
		}

		waitMin := config.RetryWaitMin
		if waitMin <= 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax <= 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(retryMax, waitMin, waitMax))
	}

	return opts
}

// Invoke implements tca.Client.Invoke.
func (c *Client) Invoke(ctx context.Context, operationName string, args map[string]interface{}) (interface{}, error) {
	resp, err := c.invokeRaw(ctx, operationName, args)
	if err != nil {
		return nil, err
	}

	return decodePayload(resp), nil
}

// Operations implements tca.Client.Operations.
func (c *Client) Operations() tca.Operations {
	return c.ops
}

// invokeRaw resolves the operation and executes it, returning the raw
// transport response. Typed resource clients decode the body themselves.
func (c *Client) invokeRaw(ctx context.Context, operationName string, args map[string]interface{}) (*http.Response, error) {
	call, err := c.resolve(operationName)
	if err != nil {
		return nil, err
	}

	return call(ctx, args)
}

// resolve returns the memoized invoker for an operation name, building it on
// first access. The cache is an optimization, not a correctness requirement:
// building the same invoker twice under concurrency is fine, LoadOrStore
// keeps a single winner.
func (c *Client) resolve(operationName string) (invoker, error) {
	if cached, ok := c.resolved.Load(operationName); ok {
		call, _ := cached.(invoker)

		return call, nil
	}

	op, ok := c.ops.Lookup(operationName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", tca.ErrUnknownOperation, operationName)
	}

	if !tca.IsSupportedMethod(op.Method) {
		return nil, fmt.Errorf("%w: %s (operation %s)", tca.ErrUnsupportedMethod, op.Method, operationName)
	}

	call := c.buildInvoker(operationName, op)

	actual, _ := c.resolved.LoadOrStore(operationName, call)
	winner, _ := actual.(invoker)

	return winner, nil
}

// buildInvoker closes over the descriptor: at call time it splits args into
// path substitutions and the remainder, then routes the remainder to the
// query string or the JSON body depending on the method.
func (c *Client) buildInvoker(operationName string, op tca.Operation) invoker {
	return func(ctx context.Context, args map[string]interface{}) (*http.Response, error) {
		path := op.Path

		rest := make(map[string]interface{}, len(args))
		for key, value := range args {
			rest[key] = value
		}

		for _, param := range op.PathParams {
			value, ok := rest[param]
			if !ok {
				continue
			}

			// Literal substitution. Callers supply URL-safe path values.
			path = strings.ReplaceAll(path, "{"+param+"}", fmt.Sprint(value))
			delete(rest, param)
		}

		req := &http.Request{Method: op.Method, Path: path}

		switch op.Method {
		case nethttp.MethodGet, nethttp.MethodDelete:
			req.Query = rest
		default:
			if len(rest) > 0 {
				req.Body = rest
			}
		}

		if c.logger != nil {
			c.logger.Debug("invoking operation", map[string]interface{}{
				"operation": operationName,
				"method":    op.Method,
				"path":      path,
			})
		}

		return c.httpClient.Do(ctx, req)
	}
}

// call invokes an operation and decodes the JSON response into out. Used by
// the typed resource clients; out may be nil when no body is expected.
func (c *Client) call(ctx context.Context, operationName string, args map[string]interface{}, out interface{}) error {
	resp, err := c.invokeRaw(ctx, operationName, args)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	err = json.Unmarshal(resp.Body, out)
	if err != nil {
		return fmt.Errorf("parsing %s response: %w", operationName, err)
	}

	return nil
}

// decodePayload parses a successful body as JSON. Parse failure is a
// deliberate soft case: some successful responses are not JSON, so the raw
// text comes back as data instead of an error.
func decodePayload(resp *http.Response) interface{} {
	var out interface{}

	err := json.Unmarshal(resp.Body, &out)
	if err != nil {
		return &tca.RawPayload{Data: string(resp.Body), Status: resp.StatusCode}
	}

	return out
}

// withArg clones args and sets one extra key, without mutating the caller's
// map.
func withArg(args map[string]interface{}, key string, value interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(args)+1)
	for k, v := range args {
		merged[k] = v
	}

	merged[key] = value

	return merged
}

// Resource client accessors

// Companies implements tca.Client.Companies.
func (c *Client) Companies() tca.CompaniesClient {
	return c.companies
}

// Lists implements tca.Client.Lists.
func (c *Client) Lists() tca.ListsClient {
	return c.lists
}

// Actions implements tca.Client.Actions.
func (c *Client) Actions() tca.ActionsClient {
	return c.actions
}

// Industries implements tca.Client.Industries.
func (c *Client) Industries() tca.IndustriesClient {
	return c.industries
}

// Technologies implements tca.Client.Technologies.
func (c *Client) Technologies() tca.TechnologiesClient {
	return c.technologies
}

// Locations implements tca.Client.Locations.
func (c *Client) Locations() tca.LocationsClient {
	return c.locations
}

// JobTitles implements tca.Client.JobTitles.
func (c *Client) JobTitles() tca.JobTitlesClient {
	return c.jobTitles
}

// Teams implements tca.Client.Teams.
func (c *Client) Teams() tca.TeamsClient {
	return c.teams
}

// Utilities implements tca.Client.Utilities.
func (c *Client) Utilities() tca.UtilitiesClient {
	return c.utilities
}

// initializeResourceClients wires the typed clients to the dispatcher.
func (c *Client) initializeResourceClients() {
	c.companies = &CompaniesClient{client: c}
	c.lists = &ListsClient{client: c}
	c.actions = &ActionsClient{client: c}
	c.industries = &IndustriesClient{client: c}
	c.technologies = &TechnologiesClient{client: c}
	c.locations = &LocationsClient{client: c}
	c.jobTitles = &JobTitlesClient{client: c}
	c.teams = &TeamsClient{client: c}
	c.utilities = &UtilitiesClient{client: c}
}

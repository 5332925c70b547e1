package client

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thecompaniesapi/tca-go/pkg/tca"
)

// newRouteServer returns a test server answering fixed JSON bodies per
// "METHOD path" key, plus the recorded requests.
func newRouteServer(t *testing.T, routes map[string]string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	requests := &[]recordedRequest{}

	server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
		recorded := recordedRequest{
			Method:   request.Method,
			Path:     request.URL.Path,
			RawQuery: request.URL.RawQuery,
		}

		if request.Body != nil {
			var body map[string]interface{}
			if err := json.NewDecoder(request.Body).Decode(&body); err == nil {
				recorded.Body = body
			}
		}

		*requests = append(*requests, recorded)

		body, ok := routes[request.Method+" "+request.URL.Path]
		if !ok {
			writer.WriteHeader(nethttp.StatusNotFound)
			_, _ = writer.Write([]byte("no route"))

			return
		}

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(body))
	}))

	return server, requests
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestCompaniesClient(t *testing.T) {
	t.Parallel()
	t.Run("Search", func(t *testing.T) {
		t.Parallel()

		server, requests := newRouteServer(t, map[string]string{
			"GET /v2/companies": `{"companies":[{"domain":"openai.com","name":"OpenAI"}],"meta":{"total":1}}`,
		})
		defer server.Close()

		client := newTestClient(t, server.URL, nil)

		result, err := client.Companies().Search(context.Background(), map[string]interface{}{"size": 1})
		require.NoError(t, err)
		require.Len(t, result.Companies, 1)
		assert.Equal(t, "openai.com", result.Companies[0].Domain)
		assert.Equal(t, "OpenAI", result.Companies[0].Name)
		assert.Equal(t, int64(1), result.Meta.Total)
		assert.Equal(t, "size=1", (*requests)[0].RawQuery)
	})

	t.Run("SearchPost sends conditions in the body", func(t *testing.T) {
		t.Parallel()

		server, requests := newRouteServer(t, map[string]string{
			"POST /v2/companies": `{"companies":[],"meta":{"total":0}}`,
		})
		defer server.Close()

		client := newTestClient(t, server.URL, nil)

		query := []interface{}{
			map[string]interface{}{"attribute": "about.industries", "operator": "or", "values": []interface{}{"software"}},
		}

		_, err := client.Companies().SearchPost(context.Background(), map[string]interface{}{"query": query})
		require.NoError(t, err)
		require.Len(t, *requests, 1)
		assert.Equal(t, query, (*requests)[0].Body["query"])
	})

	t.Run("Count", func(t *testing.T) {
		t.Parallel()

		server, _ := newRouteServer(t, map[string]string{
			"GET /v2/companies/count": `{"count":12345}`,
		})
		defer server.Close()

		client := newTestClient(t, server.URL, nil)

		count, err := client.Companies().Count(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, int64(12345), count)
	})

	t.Run("Get substitutes the domain", func(t *testing.T) {
		t.Parallel()

		server, requests := newRouteServer(t, map[string]string{
			"GET /v2/companies/openai.com": `{"domain":"openai.com","totalEmployees":500}`,
		})
		defer server.Close()

		client := newTestClient(t, server.URL, nil)

		company, err := client.Companies().Get(context.Background(), "openai.com", nil)
		require.NoError(t, err)
		assert.Equal(t, "openai.com", company.Domain)
		assert.Equal(t, int64(500), company.TotalEmployee)
		assert.Equal(t, "/v2/companies/openai.com", (*requests)[0].Path)
	})

	t.Run("Get propagates API errors", func(t *testing.T) {
		t.Parallel()

		server, _ := newRouteServer(t, map[string]string{})
		defer server.Close()

		client := newTestClient(t, server.URL, nil)

		_, err := client.Companies().Get(context.Background(), "missing.com", nil)
		require.Error(t, err)
		assert.True(t, tca.IsNotFound(err))
		assert.Contains(t, err.Error(), "fetching company")
	})

	t.Run("GetEmailPatterns", func(t *testing.T) {
		t.Parallel()

		server, _ := newRouteServer(t, map[string]string{
			"GET /v2/companies/openai.com/email-patterns": `{"patterns":[{"pattern":"{first}.{last}","score":0.9}]}`,
		})
		defer server.Close()

		client := newTestClient(t, server.URL, nil)

		patterns, err := client.Companies().GetEmailPatterns(context.Background(), "openai.com", nil)
		require.NoError(t, err)
		require.Len(t, patterns.Patterns, 1)
		assert.Equal(t, "{first}.{last}", patterns.Patterns[0].Pattern)
		assert.InDelta(t, 0.9, patterns.Patterns[0].Score, 0.001)
	})

	t.Run("Ask posts the question", func(t *testing.T) {
		t.Parallel()

		server, requests := newRouteServer(t, map[string]string{
			"POST /v2/companies/openai.com/ask": `{"answer":"They build AI models."}`,
		})
		defer server.Close()

		client := newTestClient(t, server.URL, nil)

		answer, err := client.Companies().Ask(context.Background(), "openai.com", map[string]interface{}{
			"question": "What does this company do?",
		})
		require.NoError(t, err)
		assert.Equal(t, "They build AI models.", answer.Answer)
		assert.Equal(t, "What does this company do?", (*requests)[0].Body["question"])
		assert.NotContains(t, (*requests)[0].Body, "domain")
	})
}

func TestListsClient(t *testing.T) {
	t.Parallel()
	t.Run("Create and Update", func(t *testing.T) {
		t.Parallel()

		server, requests := newRouteServer(t, map[string]string{
			"POST /v2/lists":    `{"id":7,"name":"prospects"}`,
			"PATCH /v2/lists/7": `{"id":7,"name":"customers"}`,
		})
		defer server.Close()

		client := newTestClient(t, server.URL, nil)

		created, err := client.Lists().Create(context.Background(), map[string]interface{}{"name": "prospects"})
		require.NoError(t, err)
		assert.Equal(t, int64(7), created.ID)

		updated, err := client.Lists().Update(context.Background(), created.ID, map[string]interface{}{"name": "customers"})
		require.NoError(t, err)
		assert.Equal(t, "customers", updated.Name)

		require.Len(t, *requests, 2)
		assert.Equal(t, "customers", (*requests)[1].Body["name"])
		assert.NotContains(t, (*requests)[1].Body, "listId")
	})

	t.Run("Delete", func(t *testing.T) {
		t.Parallel()

		server, requests := newRouteServer(t, map[string]string{
			"DELETE /v2/lists/7": `{}`,
		})
		defer server.Close()

		client := newTestClient(t, server.URL, nil)

		err := client.Lists().Delete(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "/v2/lists/7", (*requests)[0].Path)
	})

	t.Run("ToggleCompanies", func(t *testing.T) {
		t.Parallel()

		server, requests := newRouteServer(t, map[string]string{
			"POST /v2/lists/7/companies/toggle": `{"id":7,"name":"prospects","companiesCount":2}`,
		})
		defer server.Close()

		client := newTestClient(t, server.URL, nil)

		list, err := client.Lists().ToggleCompanies(context.Background(), 7, map[string]interface{}{
			"companies": []interface{}{"openai.com", "anthropic.com"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), list.CompaniesCount)
		assert.Equal(t, []interface{}{"openai.com", "anthropic.com"}, (*requests)[0].Body["companies"])
	})
}

func TestActionsClient(t *testing.T) {
	t.Parallel()

	server, requests := newRouteServer(t, map[string]string{
		"GET /v2/actions":           `{"actions":[{"id":1,"status":"completed"}],"meta":{"total":1}}`,
		"POST /v2/actions/request":  `{"actions":[{"id":2,"status":"pending"}],"meta":{"total":1}}`,
		"POST /v2/actions/99/retry": `{"id":99,"status":"pending"}`,
	})
	defer server.Close()

	client := newTestClient(t, server.URL, nil)

	listed, err := client.Actions().List(context.Background(), map[string]interface{}{"status": "completed"})
	require.NoError(t, err)
	require.Len(t, listed.Actions, 1)
	assert.Equal(t, "completed", listed.Actions[0].Status)
	assert.Equal(t, "status=completed", (*requests)[0].RawQuery)

	requested, err := client.Actions().Request(context.Background(), map[string]interface{}{
		"job": "enrich-companies",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", requested.Actions[0].Status)

	retried, err := client.Actions().Retry(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, int64(99), retried.ID)
	assert.Equal(t, "/v2/actions/99/retry", (*requests)[2].Path)
}

func TestEnrichmentClients(t *testing.T) {
	t.Parallel()

	server, _ := newRouteServer(t, map[string]string{
		"GET /v2/industries":          `{"industries":[{"industry":"software","companiesCount":100}],"meta":{"total":1}}`,
		"GET /v2/technologies":        `{"technologies":[{"technology":"golang","companiesCount":50}],"meta":{"total":1}}`,
		"GET /v2/locations/cities":    `{"cities":[{"name":"Paris","countryCode":"fr"}],"meta":{"total":1}}`,
		"GET /v2/locations/countries": `{"countries":[{"name":"France","code":"fr"}],"meta":{"total":1}}`,
		"GET /v2/job-titles/enrich":   `{"name":"cto","seniority":"executive","department":"engineering"}`,
		"GET /v2/teams/3":             `{"id":3,"name":"acme","credits":1000}`,
	})
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	ctx := context.Background()

	industries, err := client.Industries().List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "software", industries.Industries[0].Industry)

	technologies, err := client.Technologies().List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "golang", technologies.Technologies[0].Technology)

	cities, err := client.Locations().Cities(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "Paris", cities.Cities[0].Name)

	countries, err := client.Locations().Countries(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "fr", countries.Countries[0].Code)

	title, err := client.JobTitles().Enrich(ctx, map[string]interface{}{"name": "cto"})
	require.NoError(t, err)
	assert.Equal(t, "executive", title.Seniority)

	team, err := client.Teams().Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), team.Credits)
}

func TestUtilitiesClient(t *testing.T) {
	t.Parallel()

	server, _ := newRouteServer(t, map[string]string{
		"GET /":           `{"status":"ok"}`,
		"GET /v2/openapi": `{"openapi":"3.0.0"}`,
	})
	defer server.Close()

	client := newTestClient(t, server.URL, nil)

	health, err := client.Utilities().FetchHealth(context.Background())
	require.NoError(t, err)

	payload, ok := health.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ok", payload["status"])

	schema, err := client.Utilities().FetchOpenAPISchema(context.Background())
	require.NoError(t, err)

	doc, ok := schema.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "3.0.0", doc["openapi"])
}

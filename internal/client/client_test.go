package client

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thecompaniesapi/tca-go/pkg/tca"
)

// recordedRequest captures what the dispatcher put on the wire.
type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Body     map[string]interface{}
}

// newRecordingServer returns a test server that records every request and
// answers with the given JSON body.
func newRecordingServer(t *testing.T, responseBody string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	var mu sync.Mutex

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

		mu.Lock()
		*requests = append(*requests, recorded)
		mu.Unlock()

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(responseBody))
	}))

	return server, requests
}

func newTestClient(t *testing.T, baseURL string, ops tca.Operations) *Client {
	t.Helper()

	client, err := New(&tca.Config{
		APIToken:   "test-token",
		APIBaseURL: baseURL,
		Operations: ops,
	})
	require.NoError(t, err)

	return client
}

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := New(nil)
		require.ErrorIs(t, err, tca.ErrConfigRequired)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		_, err := New(&tca.Config{})
		require.ErrorIs(t, err, tca.ErrAPITokenRequired)
	})

	t.Run("defaults to generated operations table", func(t *testing.T) {
		t.Parallel()

		client, err := New(&tca.Config{APIToken: "test-token"})
		require.NoError(t, err)

		ops := client.Operations()
		_, ok := ops.Lookup("searchCompanies")
		assert.True(t, ok)
	})

	t.Run("resource clients are wired", func(t *testing.T) {
		t.Parallel()

		client, err := New(&tca.Config{APIToken: "test-token"})
		require.NoError(t, err)

		assert.NotNil(t, client.Companies())
		assert.NotNil(t, client.Lists())
		assert.NotNil(t, client.Actions())
		assert.NotNil(t, client.Industries())
		assert.NotNil(t, client.Technologies())
		assert.NotNil(t, client.Locations())
		assert.NotNil(t, client.JobTitles())
		assert.NotNil(t, client.Teams())
		assert.NotNil(t, client.Utilities())
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Invoke(t *testing.T) {
	t.Parallel()
	t.Run("path parameters are substituted and removed from args", func(t *testing.T) {
		t.Parallel()

		server, requests := newRecordingServer(t, `{"domain":"openai.com"}`)
		defer server.Close()

		ops := tca.Operations{
			"fetchCompany": {Path: "/v2/companies/{domain}", Method: "GET", PathParams: []string{"domain"}},
		}
		client := newTestClient(t, server.URL, ops)

		result, err := client.Invoke(context.Background(), "fetchCompany", map[string]interface{}{
			"domain": "openai.com",
			"size":   5,
		})
		require.NoError(t, err)

		require.Len(t, *requests, 1)
		assert.Equal(t, "/v2/companies/openai.com", (*requests)[0].Path)
		assert.Equal(t, "size=5", (*requests)[0].RawQuery)
		assert.NotContains(t, (*requests)[0].RawQuery, "domain")

		payload, ok := result.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "openai.com", payload["domain"])
	})

	t.Run("remaining args go to the body for POST", func(t *testing.T) {
		t.Parallel()

		server, requests := newRecordingServer(t, `{"companies":[]}`)
		defer server.Close()

		ops := tca.Operations{
			"searchCompaniesPost": {Path: "/v2/companies", Method: "POST"},
		}
		client := newTestClient(t, server.URL, ops)

		_, err := client.Invoke(context.Background(), "searchCompaniesPost", map[string]interface{}{
			"query": []interface{}{"test"},
			"size":  float64(10),
		})
		require.NoError(t, err)

		require.Len(t, *requests, 1)
		assert.Equal(t, "POST", (*requests)[0].Method)
		assert.Empty(t, (*requests)[0].RawQuery)
		assert.Equal(t, []interface{}{"test"}, (*requests)[0].Body["query"])
		assert.Equal(t, float64(10), (*requests)[0].Body["size"])
	})

	t.Run("remaining args go to the query for DELETE", func(t *testing.T) {
		t.Parallel()

		server, requests := newRecordingServer(t, `{"deleted":true}`)
		defer server.Close()

		ops := tca.Operations{
			"deleteList": {Path: "/v2/lists/{listId}", Method: "DELETE", PathParams: []string{"listId"}},
		}
		client := newTestClient(t, server.URL, ops)

		_, err := client.Invoke(context.Background(), "deleteList", map[string]interface{}{
			"listId": 42,
			"force":  true,
		})
		require.NoError(t, err)

		require.Len(t, *requests, 1)
		assert.Equal(t, "DELETE", (*requests)[0].Method)
		assert.Equal(t, "/v2/lists/42", (*requests)[0].Path)
		assert.Equal(t, "force=true", (*requests)[0].RawQuery)
	})

	t.Run("missing path parameter leaves the placeholder", func(t *testing.T) {
		t.Parallel()

		server, requests := newRecordingServer(t, `{}`)
		defer server.Close()

		ops := tca.Operations{
			"fetchCompany": {Path: "/v2/companies/{domain}", Method: "GET", PathParams: []string{"domain"}},
		}
		client := newTestClient(t, server.URL, ops)

		_, err := client.Invoke(context.Background(), "fetchCompany", nil)
		require.NoError(t, err)

		require.Len(t, *requests, 1)
		assert.Equal(t, "/v2/companies/{domain}", (*requests)[0].Path)
	})

	t.Run("unknown operation does not touch the transport", func(t *testing.T) {
		t.Parallel()

		server, requests := newRecordingServer(t, `{}`)
		defer server.Close()

		client := newTestClient(t, server.URL, tca.Operations{})

		_, err := client.Invoke(context.Background(), "doesNotExist", nil)
		require.ErrorIs(t, err, tca.ErrUnknownOperation)
		assert.Contains(t, err.Error(), "doesNotExist")
		assert.Empty(t, *requests)
	})

	t.Run("unsupported method is rejected", func(t *testing.T) {
		t.Parallel()

		server, requests := newRecordingServer(t, `{}`)
		defer server.Close()

		ops := tca.Operations{
			"headThing": {Path: "/v2/things", Method: "HEAD"},
		}
		client := newTestClient(t, server.URL, ops)

		_, err := client.Invoke(context.Background(), "headThing", nil)
		require.ErrorIs(t, err, tca.ErrUnsupportedMethod)
		assert.Empty(t, *requests)
	})

	t.Run("non-JSON success falls back to raw payload", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
			writer.Header().Set("Content-Type", "text/plain")
			_, _ = writer.Write([]byte("pong"))
		}))
		defer server.Close()

		ops := tca.Operations{
			"fetchApiHealth": {Path: "/", Method: "GET"},
		}
		client := newTestClient(t, server.URL, ops)

		result, err := client.Invoke(context.Background(), "fetchApiHealth", nil)
		require.NoError(t, err)

		raw, ok := result.(*tca.RawPayload)
		require.True(t, ok)
		assert.Equal(t, "pong", raw.Data)
		assert.Equal(t, 200, raw.Status)
	})

	t.Run("caller args map is not mutated", func(t *testing.T) {
		t.Parallel()

		server, _ := newRecordingServer(t, `{}`)
		defer server.Close()

		ops := tca.Operations{
			"fetchCompany": {Path: "/v2/companies/{domain}", Method: "GET", PathParams: []string{"domain"}},
		}
		client := newTestClient(t, server.URL, ops)

		args := map[string]interface{}{"domain": "openai.com"}

		_, err := client.Invoke(context.Background(), "fetchCompany", args)
		require.NoError(t, err)
		assert.Equal(t, "openai.com", args["domain"])
	})

	t.Run("transport errors propagate", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
			writer.WriteHeader(nethttp.StatusNotFound)
			_, _ = writer.Write([]byte("not found"))
		}))
		defer server.Close()

		ops := tca.Operations{
			"fetchCompany": {Path: "/v2/companies/{domain}", Method: "GET", PathParams: []string{"domain"}},
		}
		client := newTestClient(t, server.URL, ops)

		_, err := client.Invoke(context.Background(), "fetchCompany", map[string]interface{}{"domain": "missing.com"})
		require.Error(t, err)
		assert.True(t, tca.IsNotFound(err))
	})
}

func TestClient_Resolve(t *testing.T) {
	t.Parallel()
	t.Run("invokers are memoized per operation", func(t *testing.T) {
		t.Parallel()

		server, _ := newRecordingServer(t, `{}`)
		defer server.Close()

		ops := tca.Operations{
			"fetchApiHealth": {Path: "/", Method: "GET"},
		}
		client := newTestClient(t, server.URL, ops)

		first, err := client.resolve("fetchApiHealth")
		require.NoError(t, err)

		_, cached := client.resolved.Load("fetchApiHealth")
		assert.True(t, cached)

		second, err := client.resolve("fetchApiHealth")
		require.NoError(t, err)
		assert.NotNil(t, first)
		assert.NotNil(t, second)
	})

	t.Run("concurrent resolution is safe", func(t *testing.T) {
		t.Parallel()

		server, requests := newRecordingServer(t, `{"status":"ok"}`)
		defer server.Close()

		ops := tca.Operations{
			"fetchApiHealth": {Path: "/", Method: "GET"},
		}
		client := newTestClient(t, server.URL, ops)

		var wg sync.WaitGroup

		for range 10 {
			wg.Add(1)

			go func() {
				defer wg.Done()

				_, err := client.Invoke(context.Background(), "fetchApiHealth", nil)
				assert.NoError(t, err)
			}()
		}

		wg.Wait()
		assert.Len(t, *requests, 10)
	})
}

func TestWithArg(t *testing.T) {
	t.Parallel()

	original := map[string]interface{}{"size": 5}
	merged := withArg(original, "domain", "openai.com")

	assert.Equal(t, map[string]interface{}{"size": 5, "domain": "openai.com"}, merged)
	assert.NotContains(t, original, "domain")
}

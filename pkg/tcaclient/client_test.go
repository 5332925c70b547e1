package tcaclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thecompaniesapi/tca-go/pkg/tca"
	"github.com/thecompaniesapi/tca-go/pkg/tcaclient"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		client, err := tcaclient.New(nil)
		require.ErrorIs(t, err, tca.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("missing API token", func(t *testing.T) {
		t.Parallel()

		client, err := tcaclient.New(&tca.Config{})
		require.ErrorIs(t, err, tca.ErrAPITokenRequired)
		assert.Nil(t, client)
	})

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		client, err := tcaclient.New(&tca.Config{APIToken: "test-token"})
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.NotNil(t, client.Companies())
		assert.NotNil(t, client.Utilities())
	})

	t.Run("default operations table is exposed", func(t *testing.T) {
		t.Parallel()

		client, err := tcaclient.New(&tca.Config{APIToken: "test-token"})
		require.NoError(t, err)

		ops := client.Operations()
		op, ok := ops.Lookup("fetchCompany")
		require.True(t, ok)
		assert.Equal(t, "/v2/companies/{domain}", op.Path)
	})
}

func TestNew_BaseURLNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "trailing slash trimmed", input: "https://api.example.com/", expected: "https://api.example.com"},
		{name: "scheme prepended", input: "api.example.com", expected: "https://api.example.com"},
		{name: "http preserved", input: "http://localhost:8080", expected: "http://localhost:8080"},
		{name: "already normalized", input: "https://api.example.com", expected: "https://api.example.com"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			config := &tca.Config{APIToken: "test-token", APIBaseURL: testCase.input}

			_, err := tcaclient.New(config)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, config.APIBaseURL)
		})
	}
}

func TestNew_EndToEnd(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Basic test-token", request.Header.Get("Authorization"))
		assert.Equal(t, "/v2/companies/openai.com", request.URL.Path)

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(map[string]string{"domain": "openai.com", "name": "OpenAI"})
	}))
	defer server.Close()

	client, err := tcaclient.New(&tca.Config{
		APIToken:   "test-token",
		APIBaseURL: server.URL,
	})
	require.NoError(t, err)

	company, err := client.Companies().Get(context.Background(), "openai.com", nil)
	require.NoError(t, err)
	assert.Equal(t, "OpenAI", company.Name)
}

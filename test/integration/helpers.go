//go:build integration
// +build integration

package integration

import (
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/thecompaniesapi/tca-go/pkg/tca"
	"github.com/thecompaniesapi/tca-go/pkg/tcaclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIToken  string
	APIURL    string
	VisitorID string
	Verbose   bool
}

// LoadTestConfig loads configuration from a .env file and the environment.
// Environment variables win over the .env file.
func LoadTestConfig() *TestConfig {
	// Best effort: a missing .env file just means the environment must
	// carry the variables itself.
	_ = godotenv.Load("../../.env")

	return &TestConfig{
		APIToken:  os.Getenv("TCA_API_TOKEN"),
		APIURL:    os.Getenv("TCA_API_URL"),
		VisitorID: os.Getenv("TCA_VISITOR_ID"),
		Verbose:   os.Getenv("TCA_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIToken == "" {
		t.Skip("TCA_API_TOKEN not set, skipping integration test")
	}
}

// NewClient creates a client from the test configuration
func (config *TestConfig) NewClient(t *testing.T) tca.Client {
	t.Helper()

	clientConfig := &tca.Config{
		APIToken:   config.APIToken,
		APIBaseURL: config.APIURL,
		VisitorID:  config.VisitorID,
		Timeout:    60 * time.Second,
	}

	if config.Verbose {
		clientConfig.Debug = true
		clientConfig.Logger = &testLogger{t: t}
	}

	client, err := tcaclient.New(clientConfig)
	if err != nil {
		t.Fatalf("creating integration client: %v", err)
	}

	return client
}

// testLogger routes client logging to the test log
type testLogger struct {
	t *testing.T
}

func (l *testLogger) log(level, msg string, fields map[string]interface{}) {
	l.t.Logf("[%s] %s %v", level, msg, fields)
}

func (l *testLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l *testLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l *testLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l *testLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }

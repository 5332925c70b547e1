package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests, matching
	// the API's longest-running endpoints.
	DefaultHTTPTimeout = 300 * time.Second

	// ShortHTTPTimeout is used for quick operations such as health checks.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry budgets.
const (
	// DefaultRetryMax is the default number of retries for transient failures.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum backoff between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum backoff between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// RetryStatusCodes are the transient HTTP statuses the transport retries.
// Everything else surfaces immediately.
var RetryStatusCodes = []int{429, 500, 502, 503, 504}

// API defaults.
const (
	// DefaultAPIBaseURL is the production endpoint.
	DefaultAPIBaseURL = "https://api.thecompaniesapi.com"

	// Version is the SDK version reported in the User-Agent header.
	Version = "0.1.0"

	// DefaultUserAgent identifies the SDK and its version.
	DefaultUserAgent = "thecompaniesapi-go-sdk/" + Version
)

// File and directory permissions for CLI configuration.
const (
	ConfigDirPerm  = 0750
	ConfigFilePerm = 0600
)

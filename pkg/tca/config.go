package tca

import "time"

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a tca.Client.
//
// APIToken is the only required field; construction fails immediately when it
// is empty, before any network activity. All other fields have working
// defaults.
//
// Retry behavior is explicit configuration, not ambient library defaults:
// the transport retries HTTP 429, 500, 502, 503 and 504 with exponential
// backoff, up to RetryMax attempts after the initial try.
type Config struct {
	// APIToken is sent as "Authorization: Basic <token>" on every request.
	APIToken string

	// APIBaseURL overrides the default endpoint
	// (https://api.thecompaniesapi.com). Normalized by tcaclient.New:
	// trailing slash trimmed, "https://" added when no scheme is present.
	APIBaseURL string

	// VisitorID, when set, is attached as the Tca-Visitor-Id header. Used for
	// request attribution, not authentication.
	VisitorID string

	// Timeout bounds each HTTP round trip including retries. Defaults to
	// 300 seconds.
	Timeout time.Duration

	// RetryMax is the maximum number of retries for transient failures.
	// If 0, the default of 3 is used. Set to a negative value to disable
	// retries entirely.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Operations replaces the generated operations table. Intended for tests
	// and for consumers that regenerate the table from a newer schema.
	Operations Operations

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
}

// Package commands implements the tca CLI commands.
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thecompaniesapi/tca-go/pkg/tca"
	"github.com/thecompaniesapi/tca-go/pkg/tcaclient"
)

// Output format constants.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

// CreateClient builds a client from the active CLI configuration.
func CreateClient() (tca.Client, error) {
	token := viper.GetString("api_token")
	if token == "" {
		return nil, tca.ErrTokenNotConfigured
	}

	config := &tca.Config{
		APIToken:   token,
		APIBaseURL: viper.GetString("api_url"),
		VisitorID:  viper.GetString("visitor_id"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = &stderrLogger{}
	}

	client, err := tcaclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// ParseParams parses repeated key=value flags into call arguments. Values
// that parse as JSON are passed through structured so filters and arrays can
// be supplied inline.
func ParseParams(pairs []string) (map[string]interface{}, error) {
	args := make(map[string]interface{}, len(pairs))

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", tca.ErrInvalidParamSyntax, pair)
		}

		var parsed interface{}
		if err := json.Unmarshal([]byte(value), &parsed); err == nil {
			args[key] = parsed
		} else {
			args[key] = value
		}
	}

	return args, nil
}

// parseJSONArgs merges a JSON object string into args. Explicit --param
// flags win over the JSON document.
func parseJSONArgs(jsonArgs string, args map[string]interface{}) error {
	var parsed map[string]interface{}

	err := json.Unmarshal([]byte(jsonArgs), &parsed)
	if err != nil {
		return fmt.Errorf("parsing --json arguments: %w", err)
	}

	for key, value := range parsed {
		if _, ok := args[key]; !ok {
			args[key] = value
		}
	}

	return nil
}

// RenderJSON writes data to stdout as indented JSON.
func RenderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to JSON: %w", err)
	}

	return nil
}

// RenderYAML writes data to stdout as YAML.
func RenderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to YAML: %w", err)
	}

	return encoder.Close()
}

// RenderByFormat dispatches to the renderer matching the --output flag,
// falling back to the provided table renderer.
func RenderByFormat(data interface{}, tableRenderer func() error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return RenderJSON(data)
	case OutputFormatYAML:
		return RenderYAML(data)
	case OutputFormatTable, "":
		return tableRenderer()
	default:
		return fmt.Errorf("%w: %s", tca.ErrUnknownOutputFormat, viper.GetString("output"))
	}
}

// stderrLogger writes debug logging to stderr in verbose mode.
type stderrLogger struct{}

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s %v\n", level, msg, fields)
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

func (l *stderrLogger) Info(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

func (l *stderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

func (l *stderrLogger) Error(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}

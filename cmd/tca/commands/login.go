package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/thecompaniesapi/tca-go/pkg/tca"
	"github.com/thecompaniesapi/tca-go/pkg/tcaclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API token for later use",
		Long: `Prompt for an API token, verify it against the API health endpoint, and
store it in the CLI configuration file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			token := viper.GetString("api_token")

			if token == "" {
				fmt.Print("API token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				fmt.Println()

				token = strings.TrimSpace(string(byteToken))
			}

			if token == "" {
				return tca.ErrAPITokenRequired
			}

			config := &tca.Config{
				APIToken:   token,
				APIBaseURL: apiURL,
			}

			client, err := tcaclient.New(config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the token before persisting anything.
			_, err = client.Utilities().FetchHealth(context.Background())
			if err != nil {
				return fmt.Errorf("failed to connect to API: %w", err)
			}

			err = persistConfig(token, apiURL)
			if err != nil {
				return err
			}

			fmt.Println("Logged in. Token stored in ~/.tca/config.yml")

			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", "", "API endpoint URL")

	return cmd
}

// persistConfig writes the token and optional endpoint to the config file.
func persistConfig(token, apiURL string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".tca")

	err = os.MkdirAll(configDir, 0750)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	settings := map[string]string{"api_token": token}
	if apiURL != "" {
		settings["api_url"] = apiURL
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")

	err = os.WriteFile(configPath, data, 0600)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

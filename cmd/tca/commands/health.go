package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewHealthCommand creates the health command.
func NewHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API health",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Utilities().FetchHealth(context.Background())
			if err != nil {
				return fmt.Errorf("checking API health: %w", err)
			}

			return RenderByFormat(result, func() error {
				return RenderJSON(result)
			})
		},
	}
}

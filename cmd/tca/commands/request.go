package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/thecompaniesapi/tca-go/pkg/tca"
)

// NewRequestCommand creates the generic request command. Any operation in
// the table can be invoked by name, which keeps the CLI surface complete
// even for endpoints without a dedicated subcommand.
func NewRequestCommand() *cobra.Command {
	var (
		params   []string
		jsonArgs string
	)

	cmd := &cobra.Command{
		Use:   "request OPERATION",
		Short: "Invoke an API operation by name",
		Long: `Invoke any operation from the generated operations table by name.

Arguments are supplied as repeated --param key=value flags; values that parse
as JSON are passed through structured. Alternatively --json supplies the full
argument map at once.

Examples:
  tca request fetchApiHealth
  tca request fetchCompany --param domain=openai.com
  tca request searchCompanies --param size=5 --param 'query=[{"attribute":"about.industries","operator":"or","values":["software"]}]'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, positional []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			callArgs, err := ParseParams(params)
			if err != nil {
				return err
			}

			if jsonArgs != "" {
				err = parseJSONArgs(jsonArgs, callArgs)
				if err != nil {
					return err
				}
			}

			result, err := client.Invoke(context.Background(), positional[0], callArgs)
			if err != nil {
				return fmt.Errorf("invoking %s: %w", positional[0], err)
			}

			if raw, ok := result.(*tca.RawPayload); ok {
				fmt.Println(raw.Data)

				return nil
			}

			return RenderByFormat(result, func() error {
				return RenderJSON(result)
			})
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "call argument as key=value (repeatable)")
	cmd.Flags().StringVar(&jsonArgs, "json", "", "call arguments as a JSON object")

	return cmd
}

// NewOperationsCommand creates the operations listing command.
func NewOperationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List the operations the client can invoke",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ops := client.Operations()

			return RenderByFormat(ops, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Operation", "Method", "Path")

				for _, name := range ops.Names() {
					op, _ := ops.Lookup(name)
					_ = table.Append(name, op.Method, op.Path)
				}

				return table.Render()
			})
		},
	}
}

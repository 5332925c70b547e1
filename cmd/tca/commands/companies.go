package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/thecompaniesapi/tca-go/pkg/tca"
)

// NewCompaniesCommand creates the companies command group.
func NewCompaniesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "companies",
		Short: "Search and fetch companies",
	}

	cmd.AddCommand(newCompaniesSearchCommand())
	cmd.AddCommand(newCompaniesGetCommand())
	cmd.AddCommand(newCompaniesCountCommand())

	return cmd
}

func newCompaniesSearchCommand() *cobra.Command {
	var (
		search string
		size   int
		page   int
		params []string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search companies",
		RunE: func(cmd *cobra.Command, positional []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			args, err := ParseParams(params)
			if err != nil {
				return err
			}

			if search != "" {
				args["search"] = search
			}

			if size > 0 {
				args["size"] = size
			}

			if page > 0 {
				args["page"] = page
			}

			result, err := client.Companies().Search(context.Background(), args)
			if err != nil {
				return fmt.Errorf("searching companies: %w", err)
			}

			return RenderByFormat(result, func() error {
				return renderCompanyTable(result)
			})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "free-text search term")
	cmd.Flags().IntVar(&size, "size", 0, "page size")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "extra call argument as key=value (repeatable)")

	return cmd
}

func newCompaniesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DOMAIN",
		Short: "Fetch a company by domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, positional []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			company, err := client.Companies().Get(context.Background(), positional[0], nil)
			if err != nil {
				return fmt.Errorf("fetching company: %w", err)
			}

			return RenderByFormat(company, func() error {
				return renderCompanyDetails(company)
			})
		},
	}
}

func newCompaniesCountCommand() *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count companies matching a query",
		RunE: func(cmd *cobra.Command, positional []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			args, err := ParseParams(params)
			if err != nil {
				return err
			}

			count, err := client.Companies().Count(context.Background(), args)
			if err != nil {
				return fmt.Errorf("counting companies: %w", err)
			}

			fmt.Println(count)

			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "call argument as key=value (repeatable)")

	return cmd
}

func renderCompanyTable(result *tca.CompanySearchResult) error {
	if len(result.Companies) == 0 {
		_, _ = os.Stdout.WriteString("No companies found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Domain", "Name", "Industry", "Country", "Employees")

	for _, company := range result.Companies {
		employees := ""
		if company.TotalEmployee > 0 {
			employees = strconv.FormatInt(company.TotalEmployee, 10)
		}

		_ = table.Append(company.Domain, company.Name, company.Industry, company.Country, employees)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	if result.Meta.LastPage > 1 {
		_, _ = fmt.Fprintf(os.Stdout, "\nPage %d of %d (%d companies total)\n",
			result.Meta.CurrentPage, result.Meta.LastPage, result.Meta.Total)
	}

	return nil
}

func renderCompanyDetails(company *tca.Company) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Domain", company.Domain)
	_ = table.Append("Name", company.Name)
	_ = table.Append("Industry", company.Industry)
	_ = table.Append("Country", company.Country)
	_ = table.Append("City", company.City)

	if company.TotalEmployee > 0 {
		_ = table.Append("Employees", strconv.FormatInt(company.TotalEmployee, 10))
	}

	if company.Description != "" {
		_ = table.Append("Description", company.Description)
	}

	return table.Render()
}

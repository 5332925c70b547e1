// Command tca-gen regenerates the SDK operations table from the Companies
// API OpenAPI document:
//
//	tca-gen --schema openapi.json --out pkg/tca/operations_gen.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thecompaniesapi/tca-go/internal/generator"
	"github.com/thecompaniesapi/tca-go/pkg/tca"
)

func main() {
	var (
		schemaPath string
		outPath    string
		pkgName    string
	)

	rootCmd := &cobra.Command{
		Use:   "tca-gen",
		Short: "Generate the SDK operations table from an OpenAPI document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if schemaPath == "" {
				return tca.ErrSchemaPathRequired
			}

			if outPath == "" {
				return tca.ErrOutputPathRequired
			}

			gen, err := generator.ParseFile(schemaPath)
			if err != nil {
				return err
			}

			operations, err := gen.Operations()
			if err != nil {
				return err
			}

			err = generator.WriteFile(outPath, pkgName, operations)
			if err != nil {
				return err
			}

			fmt.Printf("Wrote %d operations to %s\n", len(operations), outPath)

			return nil
		},
	}

	rootCmd.Flags().StringVar(&schemaPath, "schema", "", "path to the OpenAPI document")
	rootCmd.Flags().StringVar(&outPath, "out", "", "path of the generated Go file")
	rootCmd.Flags().StringVar(&pkgName, "package", "tca", "package name for the generated file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

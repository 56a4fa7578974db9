package cmd

import (
	"fmt"

	"github.com/grovetools/cardvice/logging"
	"github.com/grovetools/cardvice/pkg/advice"
	"github.com/grovetools/cardvice/pkg/catalog"
	"github.com/grovetools/cardvice/schema"
	"github.com/spf13/cobra"
)

// NewCatalogCmd creates the `catalog` command group.
func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and validate advice catalogs",
		Long: `A catalog maps category names to lists of advice texts:

  categories:
    Money:
      - Pay yourself first.
    Self-Care:
      - Take a walk.

YAML, TOML and JSON files are accepted; the format follows the file extension.`,
	}

	cmd.AddCommand(newCatalogValidateCmd())
	cmd.AddCommand(newCatalogSchemaCmd())
	cmd.AddCommand(newCatalogExportCmd())
	return cmd
}

func newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a catalog file against the catalog schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Load(args[0])
			if err != nil {
				return err
			}

			pretty := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())
			pretty.Success("Catalog is valid")
			pretty.Path("File", args[0])
			pretty.Field("Cards", c.Size(advice.AllScope()))
			counts := c.Counts()
			for _, cat := range advice.AllCategories() {
				if _, ok := c[cat]; ok {
					pretty.Field(string(cat), counts[cat])
				}
			}
			for _, cat := range advice.AllCategories() {
				if counts[cat] == 0 {
					pretty.WarnPretty(fmt.Sprintf("%s has no cards and will show the empty-category message", cat))
				}
			}
			return nil
		},
	}
}

func newCatalogSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for catalog files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(schema.Embedded())
			return err
		},
	}
}

func newCatalogExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the active catalog, e.g. to start a custom one from the built-in cards",
		Long: `Prints the catalog that play and draw would use.

Examples:
  cardvice catalog export > advice.yml
  cardvice catalog export --format toml > advice.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			switch catalog.Format(format) {
			case catalog.FormatYAML, catalog.FormatTOML, catalog.FormatJSON:
			default:
				return fmt.Errorf("unsupported format %q: use yaml, toml or json", format)
			}

			name, _ := cmd.Flags().GetString("name")
			data, err := catalog.Encode(s.catalog, name, catalog.Format(format))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().String("format", string(catalog.FormatYAML), "Output format: yaml, toml or json")
	cmd.Flags().String("name", "", "Catalog name to include in the output")
	return cmd
}

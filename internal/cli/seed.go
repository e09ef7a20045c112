package cli

import (
	"fmt"

	"github.com/franciscosanchezn/pizzeria-api/internal/database"
	"github.com/spf13/cobra"
)

func newSeedCmd(opts *globalOptions) *cobra.Command {
	var (
		file  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load pizzas and customers from a YAML file",
		Long:  "Insert the pizzas and customers of a YAML seed file. Without --file the built-in menu is used. A catalog that already has pizzas is left alone unless --force is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := database.LoadSeed(file)
			if err != nil {
				return err
			}

			db, err := opts.openDatabase(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			written, err := database.Seed(db, seed, force)
			if err != nil {
				return err
			}
			if !written {
				fmt.Fprintln(cmd.OutOrStdout(), "Catalog already has pizzas, nothing seeded (use --force to append)")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d pizzas and %d customers\n", len(seed.Pizzas), len(seed.Customers))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "YAML seed file (defaults to the built-in menu)")
	cmd.Flags().BoolVar(&force, "force", false, "Seed even when the catalog already has pizzas")

	return cmd
}

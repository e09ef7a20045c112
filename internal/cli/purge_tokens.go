package cli

import (
	"fmt"
	"time"

	"github.com/franciscosanchezn/pizzeria-api/internal/auth"
	"github.com/spf13/cobra"
)

func newPurgeTokensCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "purge-tokens",
		Short: "Delete expired access tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := opts.openDatabase(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			removed, err := auth.NewGormTokenStore(db).PurgeExpired(cmd.Context(), time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d expired tokens\n", removed)
			return nil
		},
	}
}

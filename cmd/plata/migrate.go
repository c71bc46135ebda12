package main

import (
	"github.com/arturoveja/plata/internal/cli"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var legacyJSON string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the categories database",
		Long: `Applies any pending schema migrations. With --from-json, also imports an
old categories.json file ({"Category": ["KW", ...]}); the import only runs
while no user categories exist, so it is safe to repeat.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if legacyJSON != "" {
				if err := store.MigrateLegacyJSON(ctx, legacyJSON); err != nil {
					return err
				}
			}

			cmd.Println(cli.Successf("database is up to date"))
			return nil
		},
	}

	cmd.Flags().StringVar(&legacyJSON, "from-json", "", "import categories from a legacy categories.json file")
	return cmd
}

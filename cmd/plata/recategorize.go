package main

import (
	"fmt"
	"strings"

	"github.com/arturoveja/plata/internal/cli"
	"github.com/arturoveja/plata/internal/engine"
	"github.com/arturoveja/plata/internal/model"
	"github.com/arturoveja/plata/internal/pattern"
	"github.com/spf13/cobra"
)

func recategorizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recategorize <category> <details...>",
		Short: "Assign a single transaction to a category and learn from it",
		Long: `One-record version of learn: treats the given details text as manually
recategorized into <category> and persists the extracted keyword so future
runs classify similar transactions automatically.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			name := strings.TrimSpace(args[0])
			category, err := store.GetCategoryByName(ctx, name)
			if err != nil {
				return err
			}
			if category == nil {
				return fmt.Errorf("unknown category %q (see 'plata categories list')", name)
			}
			if category.IsUncategorized() {
				return fmt.Errorf("cannot learn keywords for %s", model.UncategorizedName)
			}

			details := strings.Join(args[1:], " ")
			learned, err := engine.NewLearner(store).Learn(ctx, []engine.Correction{{
				Details:     details,
				OldCategory: model.UncategorizedName,
				NewCategory: category.Name,
			}})
			if err != nil {
				return err
			}
			if learned == 0 {
				cmd.Println(cli.Warningf("no learnable keyword in %q", details))
				return nil
			}

			keyword, _ := pattern.ExtractKeyword(details)
			cmd.Println(cli.Successf("learned %q for %s", keyword, category.Name))
			return nil
		},
	}
}

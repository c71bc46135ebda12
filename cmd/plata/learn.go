package main

import (
	"fmt"
	"os"

	"github.com/arturoveja/plata/internal/cli"
	"github.com/arturoveja/plata/internal/engine"
	"github.com/arturoveja/plata/internal/ingest"
	"github.com/arturoveja/plata/internal/model"
	"github.com/spf13/cobra"
)

func learnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "learn <edited.csv>",
		Short: "Learn keywords from manually corrected categories",
		Long: `Loads a CSV whose Category column was edited by hand, re-runs the
current rules over the same transactions, and treats every row where the
user's category differs from the engine's assignment as a correction. Each
correction yields a new keyword under the corrected category so future runs
classify it automatically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open edited file: %w", err)
			}
			defer func() { _ = f.Close() }()

			edited, err := ingest.LoadTransactions(f)
			if err != nil {
				return err
			}

			snapshot, err := store.CategoriesWithKeywords(ctx)
			if err != nil {
				return err
			}
			rules := engine.CompileRules(snapshot)

			// Reconstruct what the engine would assign so user edits stand out.
			baseline := make([]model.Transaction, len(edited))
			copy(baseline, edited)
			for i := range baseline {
				baseline[i].Category = model.UncategorizedName
			}
			baseline = engine.Classify(baseline, rules)

			corrections := engine.DetectCorrections(baseline, edited)
			if len(corrections) == 0 {
				cmd.Println(cli.Warningf("no corrected categories detected"))
				return nil
			}

			learned, err := engine.NewLearner(store).Learn(ctx, corrections)
			if err != nil {
				return err
			}
			cmd.Println(cli.Successf("detected %d corrections, learned %d new keywords",
				len(corrections), learned))
			return nil
		},
	}
}

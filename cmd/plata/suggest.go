package main

import (
	"strings"

	"github.com/arturoveja/plata/internal/cli"
	"github.com/arturoveja/plata/internal/engine"
	"github.com/arturoveja/plata/internal/pattern"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func suggestCmd() *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "suggest <details...>",
		Short: "Fuzzy-match transaction details against category names",
		Long: `Best-effort approximate matching for a single record when exact keyword
rules come up empty. Scores the details text against every category name and
prints the best candidate at or above the threshold. This never feeds the
normal classification path.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			snapshot, err := store.CategoriesWithKeywords(ctx)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("threshold") {
				threshold = viper.GetInt("fuzzy.threshold")
			}

			details := strings.Join(args, " ")
			matcher := pattern.NewFuzzyMatcher(threshold)
			if got, ok := engine.SuggestCategory(matcher, details, snapshot); ok {
				cmd.Println(cli.Successf("%s", got))
				return nil
			}
			cmd.Println(cli.Warningf("no category scored %d or higher", matcher.Threshold))
			return nil
		},
	}

	cmd.Flags().IntVar(&threshold, "threshold", pattern.DefaultFuzzyThreshold, "minimum similarity score (0-100)")
	return cmd
}

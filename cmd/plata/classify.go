package main

import (
	"fmt"
	"os"

	"github.com/arturoveja/plata/internal/cli"
	"github.com/arturoveja/plata/internal/engine"
	"github.com/arturoveja/plata/internal/ingest"
	"github.com/arturoveja/plata/internal/report"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	var outputPath string
	var showSummary bool

	cmd := &cobra.Command{
		Use:   "classify <transactions.csv>",
		Short: "Categorize a CSV of bank transactions",
		Long: `Loads a transaction CSV, compiles the current keyword rules from the
database, assigns each transaction a category under first-match-wins
semantics, and writes the categorized batch back out as CSV.`,
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
				return fmt.Errorf("failed to open transactions file: %w", err)
			}
			defer func() { _ = f.Close() }()

			txns, err := ingest.LoadTransactions(f)
			if err != nil {
				return err
			}

			snapshot, err := store.CategoriesWithKeywords(ctx)
			if err != nil {
				return err
			}
			rules := engine.CompileRules(snapshot)

			txns = engine.Classify(txns, rules)

			out := os.Stdout
			if outputPath != "" {
				outFile, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer func() { _ = outFile.Close() }()
				out = outFile
			}

			var onRow func()
			if outputPath != "" {
				bar := progressbar.Default(int64(len(txns)), "writing")
				onRow = func() { _ = bar.Add(1) }
			}
			if err := ingest.WriteTransactions(out, txns, onRow); err != nil {
				return err
			}

			if showSummary {
				printSummary(cmd, report.Summarize(txns))
			}

			if outputPath != "" {
				cmd.Println(cli.Successf("classified %d transactions with %d rules -> %s",
					len(txns), len(rules), outputPath))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write categorized CSV here instead of stdout")
	cmd.Flags().BoolVar(&showSummary, "summary", false, "print debit/credit totals and category breakdown")
	return cmd
}

func printSummary(cmd *cobra.Command, s report.Summary) {
	cmd.PrintErrln(cli.TitleStyle.Render("Summary"))
	cmd.PrintErrf("debits: %s  credits: %s  balance: %s\n\n",
		s.TotalDebits.StringFixed(2), s.TotalCredits.StringFixed(2), s.Balance.StringFixed(2))

	rows := make([][]string, 0, len(s.ByCategory))
	for _, ct := range s.ByCategory {
		rows = append(rows, []string{ct.Category, fmt.Sprintf("%d", ct.Count), ct.Amount.StringFixed(2)})
	}
	cmd.PrintErrln(cli.RenderTable([]string{"Category", "Count", "Amount"}, rows))
}

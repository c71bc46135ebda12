package main

import (
	"fmt"
	"strconv"

	"github.com/arturoveja/plata/internal/cli"
	"github.com/spf13/cobra"
)

func keywordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Manage matching keywords and patterns",
	}
	cmd.AddCommand(keywordsAddCmd())
	cmd.AddCommand(keywordsDeleteCmd())
	cmd.AddCommand(keywordsEnableCmd(true))
	cmd.AddCommand(keywordsEnableCmd(false))
	return cmd
}

func keywordsAddCmd() *cobra.Command {
	var isRegex bool

	cmd := &cobra.Command{
		Use:   "add <category-name> <pattern>",
		Short: "Add a keyword or regex pattern to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cat, err := store.GetCategoryByName(ctx, args[0])
			if err != nil {
				return err
			}
			if cat == nil {
				return fmt.Errorf("category %q does not exist", args[0])
			}

			if err := store.CreateKeyword(ctx, cat.ID, args[1], isRegex); err != nil {
				return err
			}
			cmd.Println(cli.Successf("added %s %q to %q",
				keywordKind(isRegex), args[1], cat.Name))
			return nil
		},
	}

	cmd.Flags().BoolVar(&isRegex, "regex", false, "interpret the pattern as a regular expression")
	return cmd
}

func keywordKind(isRegex bool) string {
	if isRegex {
		return "regex"
	}
	return "keyword"
}

func keywordsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a keyword by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid keyword id %q", args[0])
			}

			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteKeyword(ctx, id); err != nil {
				return err
			}
			cmd.Println(cli.Successf("deleted keyword %d", id))
			return nil
		},
	}
}

func keywordsEnableCmd(enabled bool) *cobra.Command {
	use, short := "enable <id>", "Re-enable a disabled keyword"
	if !enabled {
		use, short = "disable <id>", "Disable a keyword without deleting it"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid keyword id %q", args[0])
			}

			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SetKeywordEnabled(ctx, id, enabled); err != nil {
				return err
			}
			state := "enabled"
			if !enabled {
				state = "disabled"
			}
			cmd.Println(cli.Successf("keyword %d %s", id, state))
			return nil
		},
	}
}

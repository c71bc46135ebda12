package main

import (
	"fmt"
	"strconv"

	"github.com/arturoveja/plata/internal/cli"
	"github.com/arturoveja/plata/internal/model"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage spending categories",
	}
	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesDeleteCmd())
	cmd.AddCommand(categoriesSetPriorityCmd())
	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories with their keywords",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			categories, err := store.CategoriesWithKeywords(ctx)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(categories))
			for _, cat := range categories {
				enabled := len(cat.EnabledKeywords())
				rows = append(rows, []string{
					strconv.Itoa(cat.ID),
					cat.Name,
					strconv.Itoa(cat.Priority),
					fmt.Sprintf("%d (%d enabled)", len(cat.Keywords), enabled),
				})
			}
			cmd.Println(cli.RenderTable([]string{"ID", "Name", "Priority", "Keywords"}, rows))
			return nil
		},
	}
}

func categoriesAddCmd() *cobra.Command {
	var priority int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cat, err := store.CreateCategory(ctx, args[0], priority)
			if err != nil {
				return err
			}
			cmd.Println(cli.Successf("created category %q (id %d, priority %d)", cat.Name, cat.ID, cat.Priority))
			return nil
		},
	}

	cmd.Flags().IntVar(&priority, "priority", model.DefaultPriority, "evaluation priority (lower = evaluated earlier)")
	return cmd
}

func categoriesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category and all of its keywords",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid category id %q", args[0])
			}

			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteCategory(ctx, id); err != nil {
				return err
			}
			cmd.Println(cli.Successf("deleted category %d", id))
			return nil
		},
	}
}

func categoriesSetPriorityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-priority <id> <priority>",
		Short: "Change a category's evaluation priority",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid category id %q", args[0])
			}
			priority, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid priority %q", args[1])
			}

			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.UpdateCategoryPriority(ctx, id, priority); err != nil {
				return err
			}
			cmd.Println(cli.Successf("category %d now has priority %d", id, priority))
			return nil
		},
	}
}

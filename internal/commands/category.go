package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledgerloom-dev/ledgerloom/internal/rulelog"
)

func newCategoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage spending categories",
	}

	cmd.AddCommand(newCategoryListCommand())
	cmd.AddCommand(newCategoryAddCommand())
	cmd.AddCommand(newCategoryKeywordsCommand())

	return cmd
}

func newCategoryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories and their keyword counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}

			for _, cat := range p.svc.Ruleset().Categories {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %d keywords\n", cat.Name, len(cat.Keywords))
			}
			return nil
		},
	}
}

func newCategoryAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}

			name := args[0]
			if err := p.svc.CreateCategory(name); err != nil {
				return err
			}
			if err := p.recordChanges("rules: add category "+name, []rulelog.Entry{
				{Action: rulelog.ActionCreateCategory, Category: name},
			}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added category %q\n", name)
			return nil
		},
	}
}

func newCategoryKeywordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keywords <name>",
		Short: "Show the keyword list for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}

			kws, err := p.svc.Keywords(args[0])
			if err != nil {
				return err
			}
			if len(kws) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No keywords yet")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(kws, ", "))
			return nil
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerloom-dev/ledgerloom/internal/rulelog"
)

func newHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the ruleset change log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}

			entries, err := rulelog.Read(p.root)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No ruleset changes recorded")
				return nil
			}

			for _, e := range entries {
				switch e.Action {
				case rulelog.ActionCreateCategory:
					fmt.Fprintf(cmd.OutOrStdout(), "%s  created category %q\n",
						e.Timestamp.Format("2006-01-02 15:04"), e.Category)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s += %q\n",
						e.Timestamp.Format("2006-01-02 15:04"), e.Category, e.Keyword)
				}
			}
			return nil
		},
	}
}

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledgerloom-dev/ledgerloom/internal/rulelog"
)

func newLearnCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "learn <category> <keyword>...",
		Short: "Add matching keywords to an existing category",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}

			category := args[0]
			var entries []rulelog.Entry
			for _, keyword := range args[1:] {
				changed, err := p.svc.Learn(category, keyword)
				if err != nil {
					return err
				}
				if !changed {
					p.log.Debug().Str("keyword", keyword).Msg("keyword already known")
					continue
				}
				entries = append(entries, rulelog.Entry{
					Action:   rulelog.ActionLearn,
					Category: category,
					Keyword:  strings.TrimSpace(keyword),
				})
			}

			if err := p.recordChanges("rules: learn keywords for "+category, entries); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d keyword(s) added\n", category, len(entries))
			return nil
		},
	}
}

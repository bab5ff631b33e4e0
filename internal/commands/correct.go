package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledgerloom-dev/ledgerloom/internal/categorize"
	"github.com/ledgerloom-dev/ledgerloom/internal/rulelog"
)

func newCorrectCommand() *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "correct <statement.csv> --set ROW=CATEGORY ...",
		Short: "Recategorize statement rows and learn from the corrections",
		Long: `Correct applies manual category overrides to a statement. Each corrected
transaction's description is added to the target category's keyword list, so
the next run categorizes it automatically. Row numbers are the ones printed
by "report --transactions".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}

			overrides, err := parseOverrides(sets)
			if err != nil {
				return err
			}

			txns, err := loadStatement(args[0])
			if err != nil {
				return err
			}
			txns = categorize.Apply(txns, p.svc.Ruleset())

			before := make([]string, len(txns))
			for i, txn := range txns {
				before[i] = txn.Category
			}

			txns, err = categorize.ApplyOverrides(txns, overrides, p.svc)
			if err != nil {
				return err
			}

			var entries []rulelog.Entry
			for _, ov := range overrides {
				if before[ov.Row] == ov.Category {
					continue
				}
				entries = append(entries, rulelog.Entry{
					Action:   rulelog.ActionLearn,
					Category: ov.Category,
					Keyword:  txns[ov.Row].Details,
				})
			}
			if err := p.recordChanges("rules: learn from corrections", entries); err != nil {
				return err
			}

			printTransactions(cmd.OutOrStdout(), "Transactions", txns, p.cfg.Display.Currency)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "override as ROW=CATEGORY (repeatable)")
	_ = cmd.MarkFlagRequired("set")

	return cmd
}

func parseOverrides(sets []string) ([]categorize.Override, error) {
	overrides := make([]categorize.Override, 0, len(sets))
	for _, s := range sets {
		row, category, ok := strings.Cut(s, "=")
		if !ok || category == "" {
			return nil, fmt.Errorf("invalid override %q, want ROW=CATEGORY", s)
		}
		n, err := strconv.Atoi(strings.TrimSpace(row))
		if err != nil {
			return nil, fmt.Errorf("invalid override row %q: %w", row, err)
		}
		overrides = append(overrides, categorize.Override{Row: n, Category: category})
	}
	return overrides, nil
}

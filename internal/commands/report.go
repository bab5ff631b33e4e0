package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerloom-dev/ledgerloom/internal/categorize"
	"github.com/ledgerloom-dev/ledgerloom/internal/model"
	"github.com/ledgerloom-dev/ledgerloom/internal/report"
	"github.com/ledgerloom-dev/ledgerloom/internal/statement"
)

func newReportCommand() *cobra.Command {
	var byDay bool
	var credits bool
	var listTxns bool

	cmd := &cobra.Command{
		Use:   "report <statement.csv>",
		Short: "Categorize a statement and print spending aggregates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}

			txns, err := loadStatement(args[0])
			if err != nil {
				return err
			}
			p.log.Debug().Int("rows", len(txns)).Str("file", args[0]).Msg("parsed statement")
			if len(txns) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No settled transactions found")
				return nil
			}

			txns = categorize.Apply(txns, p.svc.Ruleset())
			out := cmd.OutOrStdout()
			cur := p.cfg.Display.Currency

			summary, creditTxns := report.Credits(txns)
			fmt.Fprintf(out, "Total spending: %s %s\n", report.DebitTotal(txns).StringFixed(2), cur)
			fmt.Fprintf(out, "Total payments: %s %s (%d transactions)\n\n", summary.Total.StringFixed(2), cur, summary.Count)

			printCategoryTotals(out, report.ByCategory(txns), cur)

			if byDay {
				fmt.Fprintln(out)
				printDayTotals(out, report.ByDay(txns), cur)
			}
			if credits {
				fmt.Fprintln(out)
				printTransactions(out, "Payments", creditTxns, cur)
			}
			if listTxns {
				fmt.Fprintln(out)
				printTransactions(out, "Transactions", txns, cur)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&byDay, "by-day", false, "include the daily spending series")
	cmd.Flags().BoolVar(&credits, "credits", false, "include the credit-side transaction list")
	cmd.Flags().BoolVar(&listTxns, "transactions", false, "include the full categorized transaction list")

	return cmd
}

func loadStatement(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	return statement.Parse(f)
}

func printCategoryTotals(w io.Writer, totals []report.CategoryTotal, currency string) {
	fmt.Fprintln(w, "Spending by category:")
	for _, t := range totals {
		fmt.Fprintf(w, "  %-24s %12s %s\n", t.Category, t.Total.StringFixed(2), currency)
	}
}

func printDayTotals(w io.Writer, totals []report.DayTotal, currency string) {
	fmt.Fprintln(w, "Spending by day:")
	for _, t := range totals {
		fmt.Fprintf(w, "  %s %12s %s\n", t.Date.Format("2006-01-02"), t.Total.StringFixed(2), currency)
	}
}

func printTransactions(w io.Writer, title string, txns []model.Transaction, currency string) {
	fmt.Fprintf(w, "%s:\n", title)
	for i, txn := range txns {
		fmt.Fprintf(w, "  %3d  %s  %-40s %12s %s  %s\n",
			i, txn.Date.Format("2006-01-02"), txn.Details, txn.Amount.StringFixed(2), currency, txn.Category)
	}
}

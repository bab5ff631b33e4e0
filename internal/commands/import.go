package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerloom-dev/ledgerloom/internal/categorize"
	"github.com/ledgerloom-dev/ledgerloom/internal/model"
	"github.com/ledgerloom-dev/ledgerloom/internal/report"
	"github.com/ledgerloom-dev/ledgerloom/internal/statement"
)

func newImportCommand() *cobra.Command {
	var keep bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Categorize statements waiting in the import directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}

			files, err := statement.Scan(p.root)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to import")
				return nil
			}

			out := cmd.OutOrStdout()
			rs := p.svc.Ruleset()
			for _, file := range files {
				f, err := os.Open(file.Path)
				if err != nil {
					return fmt.Errorf("opening %s: %w", file.Name, err)
				}
				txns, err := statement.Parse(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("%s: %w", file.Name, err)
				}

				txns = categorize.Apply(txns, rs)
				uncategorized := 0
				for _, txn := range txns {
					if txn.Category == model.Uncategorized {
						uncategorized++
					}
				}
				fmt.Fprintf(out, "%s: %d transactions, %s %s spent, %d uncategorized\n",
					file.Name, len(txns), report.DebitTotal(txns).StringFixed(2), p.cfg.Display.Currency, uncategorized)

				if !keep {
					if err := statement.MarkProcessed(p.root, file.Name); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&keep, "keep", false, "leave files in import/ after processing")

	return cmd
}

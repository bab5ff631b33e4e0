// Package categorize assigns categories to transactions by keyword matching.
package categorize

import (
	"fmt"
	"strings"

	"github.com/ledgerloom-dev/ledgerloom/internal/model"
)

// Apply returns a new transaction slice with every category recomputed from
// the ruleset. The input slice and the ruleset are not mutated.
//
// Categories are evaluated in ruleset order and a later match overwrites an
// earlier one: when keyword sets overlap across categories, the
// last-declared category wins. Rerunning Apply with the same ruleset yields
// identical results.
func Apply(txns []model.Transaction, rs model.Ruleset) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	copy(out, txns)
	for i := range out {
		out[i].Category = model.Uncategorized
	}

	for _, cat := range rs.Categories {
		if cat.Name == model.Uncategorized || len(cat.Keywords) == 0 {
			continue
		}

		keywords := make([]string, 0, len(cat.Keywords))
		for _, kw := range cat.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				keywords = append(keywords, kw)
			}
		}

		for i := range out {
			details := strings.ToLower(strings.TrimSpace(out[i].Details))
			for _, kw := range keywords {
				if strings.Contains(details, kw) {
					out[i].Category = cat.Name
					break
				}
			}
		}
	}
	return out
}

// Learner records a corrected description as a keyword for a category.
// *rules.Service satisfies it.
type Learner interface {
	Learn(category, keyword string) (bool, error)
	Ruleset() model.Ruleset
}

// Override is a user correction: assign the transaction at Row (0-based,
// into the parsed statement) to Category.
type Override struct {
	Row      int
	Category string
}

// ApplyOverrides returns a new slice with each override's category set, and
// feeds each corrected transaction's details back into the learner so future
// runs categorize it automatically. All overrides are validated before any
// keyword is learned, so an invalid batch leaves the ruleset untouched.
func ApplyOverrides(txns []model.Transaction, overrides []Override, learner Learner) ([]model.Transaction, error) {
	rs := learner.Ruleset()
	for _, ov := range overrides {
		if ov.Row < 0 || ov.Row >= len(txns) {
			return nil, fmt.Errorf("override row %d out of range (have %d transactions)", ov.Row, len(txns))
		}
		if !rs.Has(ov.Category) {
			return nil, fmt.Errorf("override row %d: unknown category %q", ov.Row, ov.Category)
		}
	}

	out := make([]model.Transaction, len(txns))
	copy(out, txns)
	for _, ov := range overrides {
		if out[ov.Row].Category == ov.Category {
			continue
		}
		out[ov.Row].Category = ov.Category
		if _, err := learner.Learn(ov.Category, out[ov.Row].Details); err != nil {
			return nil, err
		}
	}
	return out, nil
}

package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerloom-dev/ledgerloom/internal/model"
)

// dateFormat matches statement dates like "28 Feb 2025".
const dateFormat = "02 Jan 2006"

// Column names expected in the statement header (after trimming).
const (
	colDate      = "Date"
	colDetails   = "Details"
	colAmount    = "Amount"
	colDirection = "Debit/Credit"
	colStatus    = "Status"
)

// ParseError reports a malformed statement file. Row is 1-based over the
// whole file (header is row 1); 0 means the file as a whole.
type ParseError struct {
	Row int
	Err error
}

func (e *ParseError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("parsing statement: %v", e.Err)
	}
	return fmt.Sprintf("parsing statement row %d: %v", e.Row, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads a bank statement CSV and returns normalized transactions in
// input order. If a Status column is present, only SETTLED rows are kept.
// An empty result with a nil error means the file parsed but held no
// retained rows.
func Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if len(records) == 0 {
		return nil, &ParseError{Err: fmt.Errorf("missing header row")}
	}

	cols, err := indexHeader(records[0])
	if err != nil {
		return nil, &ParseError{Row: 1, Err: err}
	}

	txns := []model.Transaction{}
	for i, rec := range records[1:] {
		txn, keep, err := parseRow(rec, cols)
		if err != nil {
			return nil, &ParseError{Row: i + 2, Err: err}
		}
		if keep {
			txns = append(txns, txn)
		}
	}
	return txns, nil
}

// columns maps logical column names to field indexes; -1 = absent.
type columns struct {
	date      int
	details   int
	amount    int
	direction int
	status    int
}

func indexHeader(header []string) (columns, error) {
	byName := make(map[string]int, len(header))
	for i, name := range header {
		byName[strings.TrimSpace(name)] = i
	}

	cols := columns{status: -1}
	required := []struct {
		name string
		dst  *int
	}{
		{colDate, &cols.date},
		{colDetails, &cols.details},
		{colAmount, &cols.amount},
		{colDirection, &cols.direction},
	}
	for _, req := range required {
		idx, ok := byName[req.name]
		if !ok {
			return columns{}, fmt.Errorf("missing column %q", req.name)
		}
		*req.dst = idx
	}
	if idx, ok := byName[colStatus]; ok {
		cols.status = idx
	}
	return cols, nil
}

func parseRow(rec []string, cols columns) (model.Transaction, bool, error) {
	last := cols.date
	for _, idx := range []int{cols.details, cols.amount, cols.direction, cols.status} {
		if idx > last {
			last = idx
		}
	}
	if len(rec) <= last {
		return model.Transaction{}, false, fmt.Errorf("expected at least %d fields, got %d", last+1, len(rec))
	}

	status := model.StatusSettled
	if cols.status >= 0 {
		// Only the bank's exact SETTLED marker counts as settled.
		if rec[cols.status] != string(model.StatusSettled) {
			return model.Transaction{}, false, nil
		}
	}

	date, err := time.Parse(dateFormat, rec[cols.date])
	if err != nil {
		return model.Transaction{}, false, fmt.Errorf("parsing date %q: %w", rec[cols.date], err)
	}

	raw := strings.ReplaceAll(rec[cols.amount], ",", "")
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return model.Transaction{}, false, fmt.Errorf("parsing amount %q: %w", rec[cols.amount], err)
	}

	direction, err := parseDirection(rec[cols.direction])
	if err != nil {
		return model.Transaction{}, false, err
	}

	return model.Transaction{
		Date:      date,
		Details:   strings.TrimSpace(rec[cols.details]),
		Amount:    amount,
		Direction: direction,
		Status:    status,
		Category:  model.Uncategorized,
	}, true, nil
}

func parseDirection(s string) (model.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debit":
		return model.Debit, nil
	case "credit":
		return model.Credit, nil
	default:
		return "", fmt.Errorf("unknown direction %q", s)
	}
}

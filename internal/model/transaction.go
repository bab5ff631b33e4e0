package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction says which side of the account a statement row moved.
type Direction string

const (
	Debit  Direction = "Debit"
	Credit Direction = "Credit"
)

// TxnStatus is the settlement state reported by the bank.
type TxnStatus string

const (
	StatusSettled TxnStatus = "SETTLED"
	StatusOther   TxnStatus = "OTHER"
)

// Transaction represents one normalized bank statement row.
type Transaction struct {
	Date      time.Time
	Details   string          // merchant description, trimmed, original case
	Amount    decimal.Decimal // non-negative magnitude
	Direction Direction
	Status    TxnStatus
	Category  string // always set; defaults to Uncategorized
}

package statement

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerloom-dev/ledgerloom/internal/model"
)

const sampleCSV = `Date,Details,Amount,Currency,Debit/Credit,Status
01 Jan 2025,Starbucks Downtown,10.50,AED,Debit,SETTLED
02 Jan 2025,UBER EATS DUBAI,45.00,AED,Debit,SETTLED
03 Jan 2025,SALARY JANUARY,"12,500.00",AED,Credit,SETTLED
04 Jan 2025,Refunded Purchase,99.99,AED,Debit,REVERSED
`

func TestParse(t *testing.T) {
	txns, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, txns, 3, "REVERSED row must be excluded")

	first := txns[0]
	assert.Equal(t, "Starbucks Downtown", first.Details)
	assert.Equal(t, "10.50", first.Amount.StringFixed(2))
	assert.Equal(t, model.Debit, first.Direction)
	assert.Equal(t, model.StatusSettled, first.Status)
	assert.Equal(t, model.Uncategorized, first.Category)
	assert.Equal(t, 2025, first.Date.Year())
	assert.Equal(t, 1, int(first.Date.Month()))
	assert.Equal(t, 1, first.Date.Day())

	// Input row order is preserved.
	assert.Equal(t, "UBER EATS DUBAI", txns[1].Details)
	assert.Equal(t, "SALARY JANUARY", txns[2].Details)
	assert.Equal(t, model.Credit, txns[2].Direction)
}

func TestParse_GroupedAmount(t *testing.T) {
	csv := "Date,Details,Amount,Debit/Credit\n15 Mar 2025,Rent March,\"1,234.56\",Debit\n"
	txns, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "1234.56", txns[0].Amount.String())
}

func TestParse_TrimmedHeaders(t *testing.T) {
	csv := " Date , Details , Amount , Debit/Credit \n28 Feb 2025,IKEA,200.00,Debit\n"
	txns, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "IKEA", txns[0].Details)
}

func TestParse_NoStatusColumnKeepsAll(t *testing.T) {
	csv := "Date,Details,Amount,Debit/Credit\n01 Jan 2025,A,1.00,Debit\n02 Jan 2025,B,2.00,Credit\n"
	txns, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, txns, 2)
}

func TestParse_StatusIsCaseSensitive(t *testing.T) {
	csv := "Date,Details,Amount,Debit/Credit,Status\n01 Jan 2025,A,1.00,Debit,settled\n"
	txns, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, txns, "lowercase status is not SETTLED")
}

func TestParse_AllRowsFilteredOut(t *testing.T) {
	csv := "Date,Details,Amount,Debit/Credit,Status\n01 Jan 2025,A,1.00,Debit,REVERSED\n"
	txns, err := Parse(strings.NewReader(csv))
	require.NoError(t, err, "a fully filtered file is not a parse failure")
	assert.NotNil(t, txns)
	assert.Empty(t, txns)
}

func TestParse_HeaderOnly(t *testing.T) {
	txns, err := Parse(strings.NewReader("Date,Details,Amount,Debit/Credit\n"))
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestParse_MissingColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("Date,Details,Amount\n01 Jan 2025,A,1.00\n"))
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, err.Error(), "Debit/Credit")
}

func TestParse_BadDate(t *testing.T) {
	csv := "Date,Details,Amount,Debit/Credit\n2025-01-01,A,1.00,Debit\n"
	_, err := Parse(strings.NewReader(csv))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Row)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestParse_BadAmount(t *testing.T) {
	csv := "Date,Details,Amount,Debit/Credit\n01 Jan 2025,A,ten,Debit\n"
	_, err := Parse(strings.NewReader(csv))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestParse_BadDirection(t *testing.T) {
	csv := "Date,Details,Amount,Debit/Credit\n01 Jan 2025,A,1.00,Transfer\n"
	_, err := Parse(strings.NewReader(csv))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, err.Error(), "unknown direction")
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*ParseError)))
}

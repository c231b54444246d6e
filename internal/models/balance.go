package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BalanceType labels the side of a ledger balance
type BalanceType string

// Balance type constants
const (
	BalanceCredit BalanceType = "Cr"
	BalanceDebit  BalanceType = "Dr"
)

// Balance is an unsigned ledger balance with its side
type Balance struct {
	Amount decimal.Decimal `json:"amount"`
	Type   BalanceType     `json:"type"`
}

// NewBalance labels a net (credits minus debits) figure; zero counts as credit
func NewBalance(net decimal.Decimal) Balance {
	if net.IsNegative() {
		return Balance{Amount: net.Abs(), Type: BalanceDebit}
	}
	return Balance{Amount: net, Type: BalanceCredit}
}

// String renders the balance as "1,000.00 Cr"
func (b Balance) String() string {
	return FormatCurrency(b.Amount) + " " + string(b.Type)
}

// DisplayDateLayout is the day-month-year form dates are stored and shown in ("14-Oct-26")
const DisplayDateLayout = "02-Jan-06"

// InputDateLayout is the form dates are submitted in
const InputDateLayout = "2006-01-02"

// FormatDisplayDate converts a submitted YYYY-MM-DD date to its display form.
// Values that are already in display form are returned unchanged.
func FormatDisplayDate(input string) (string, error) {
	if _, err := time.Parse(DisplayDateLayout, input); err == nil {
		return input, nil
	}
	t, err := time.Parse(InputDateLayout, input)
	if err != nil {
		return "", err
	}
	return t.Format(DisplayDateLayout), nil
}

// FormatCurrency renders an amount with two decimals and Indian digit grouping
// (1234567.5 -> "12,34,567.50")
func FormatCurrency(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, frac = s[:dot], s[dot:]
	}

	var groups []string
	if len(intPart) > 3 {
		groups = append(groups, intPart[len(intPart)-3:])
		intPart = intPart[:len(intPart)-3]
		for len(intPart) > 2 {
			groups = append([]string{intPart[len(intPart)-2:]}, groups...)
			intPart = intPart[:len(intPart)-2]
		}
		if intPart != "" {
			groups = append([]string{intPart}, groups...)
		}
	} else {
		groups = []string{intPart}
	}

	out := strings.Join(groups, ",") + frac
	if d.IsNegative() {
		return "-" + out
	}
	return out
}

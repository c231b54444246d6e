package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AmountInWords spells an amount in Indian English with lakh and crore grouping
// Example: 560 -> "INR Five Hundred Sixty Only"
// Example: 1250.5 -> "INR One Thousand Two Hundred Fifty and Fifty Paise Only"
func AmountInWords(amount decimal.Decimal) string {
	amount = amount.Abs().Round(2)
	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(hundred).IntPart()

	words := "INR " + numberToWords(rupees)
	if paise > 0 {
		words += " and " + numberToWords(paise) + " Paise"
	}
	return words + " Only"
}

func numberToWords(n int64) string {
	if n == 0 {
		return "Zero"
	}

	var parts []string
	if crores := n / 10000000; crores > 0 {
		// above 99 crore the crore count is itself grouped
		parts = append(parts, numberToWords(crores)+" Crore")
		n %= 10000000
	}
	if lakhs := n / 100000; lakhs > 0 {
		parts = append(parts, belowHundred(lakhs)+" Lakh")
		n %= 100000
	}
	if thousands := n / 1000; thousands > 0 {
		parts = append(parts, belowHundred(thousands)+" Thousand")
		n %= 1000
	}
	if hundreds := n / 100; hundreds > 0 {
		parts = append(parts, ones[hundreds]+" Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, belowHundred(n))
	}
	return strings.Join(parts, " ")
}

func belowHundred(n int64) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + " " + ones[n%10]
}

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

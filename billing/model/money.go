package model

import (
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of fraction digits kept for monetary amounts.
const MoneyPlaces = 2

// LineTotal returns quantity x unitPrice rounded half away from zero to
// MoneyPlaces.
func LineTotal(quantity int32, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt32(quantity)).Round(MoneyPlaces)
}

// Subtotal sums the line totals of items.
func Subtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.LineTotal)
	}
	return sum
}

// FormatAmount renders an amount with exactly MoneyPlaces fraction digits.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyPlaces)
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillView is the computed, read-only bill of one transaction.
// It is rebuilt from the data store on every lookup.
type BillView struct {
	Transaction Transaction
	Buyer       Buyer
	LineItems   []LineItem
	Subtotal    decimal.Decimal
	Total       decimal.Decimal
}

type Transaction struct {
	ID            string
	PurchaseDate  time.Time
	PaymentMethod string
}

type Buyer struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

type LineItem struct {
	ProductName string
	Quantity    int32
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

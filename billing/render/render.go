// Package render turns a looked-up bill into printable text. Output depends
// only on its arguments.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"encore.dev/beta/errs"

	"billlookup/billing/model"
)

const dateLayout = "2006-01-02"

// Header is the seller block printed above every bill.
type Header struct {
	CompanyName    string
	CompanyAddress string
	CurrencySymbol string
}

// Bill writes the full text bill for view.
func Bill(w io.Writer, header Header, view *model.BillView) error {
	var b strings.Builder

	writeHeader(&b, header)

	fmt.Fprintf(&b, "Buyer Name: %s   Phone: %s\n", view.Buyer.Name, view.Buyer.Phone)
	fmt.Fprintf(&b, "Address: %s\n", view.Buyer.Address)
	fmt.Fprintf(&b, "Email: %s\n\n", view.Buyer.Email)

	tw := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "Product Name\tQuantity\tUnit Price\tTotal Price\t")
	for _, item := range view.LineItems {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t\n",
			item.ProductName,
			item.Quantity,
			model.FormatAmount(item.UnitPrice),
			model.FormatAmount(item.LineTotal),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(&b, "\nSubtotal: %s%s\n", header.CurrencySymbol, model.FormatAmount(view.Subtotal))
	fmt.Fprintf(&b, "Total Amount Due: %s%s\n\n", header.CurrencySymbol, model.FormatAmount(view.Total))

	date := ""
	if !view.Transaction.PurchaseDate.IsZero() {
		date = view.Transaction.PurchaseDate.Format(dateLayout)
	}
	fmt.Fprintf(&b, "Transaction ID: %s   Date: %s   Payment: %s\n",
		view.Transaction.ID, date, view.Transaction.PaymentMethod)

	_, err := io.WriteString(w, b.String())
	return err
}

// Message returns the user-visible text for a failed lookup.
func Message(err error) string {
	var e *errs.Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return "Database error: " + err.Error()
}

// Result renders view, or only the message of err when the lookup failed.
// A failed lookup never prints a partial bill.
func Result(w io.Writer, header Header, view *model.BillView, err error) error {
	if err != nil || view == nil {
		if err == nil {
			err = &errs.Error{Code: errs.NotFound, Message: "Transaction not found."}
		}
		_, werr := fmt.Fprintln(w, Message(err))
		return werr
	}
	return Bill(w, header, view)
}

func writeHeader(b *strings.Builder, header Header) {
	if header.CompanyName != "" {
		b.WriteString(header.CompanyName + "\n")
	}
	if header.CompanyAddress != "" {
		b.WriteString(header.CompanyAddress + "\n")
	}
	if header.CompanyName != "" || header.CompanyAddress != "" {
		b.WriteString("\n")
	}
}

package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// TaxRate is the fixed PPN (Indonesian VAT) rate applied to every order.
const TaxRate = 0.11

// ComputeLineTotal returns quantity * unit price. Values are taken as-is;
// range checks belong to the order engine, not here.
func ComputeLineTotal(quantity int, price float64) float64 {
	return float64(quantity) * price
}

// ComputeTax returns the tax amount for a subtotal at the fixed rate.
func ComputeTax(subtotal float64) float64 {
	return subtotal * TaxRate
}

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount as an id-ID rupiah string, e.g.
// "Rp 130.000". Display only; no rounding happens anywhere else.
func FormatRupiah(amount float64) string {
	return rupiahPrinter.Sprintf("Rp %v", number.Decimal(amount, number.MaxFractionDigits(0)))
}

package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/yourusername/katalika-invoicing/models"
)

// id-ID short month names, as produced by the id locale.
var monthShortID = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// MonthLabelID renders the month of t as an id-ID "Mon yyyy" label, e.g.
// "Agu 2026". Used as the grouping key of the monthly revenue breakdown.
func MonthLabelID(t time.Time) string {
	return fmt.Sprintf("%s %d", monthShortID[int(t.Month())-1], t.Year())
}

// FormatReportText renders a report as the downloadable plain-text document:
// a header with the period and generation time, a financial summary, the
// per-status breakdown and the monthly revenue rollup.
func FormatReportText(data models.ReportData, rng models.DateRange, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("LAPORAN KEUANGAN STUDIO KATALIKA\n")
	fmt.Fprintf(&b, "Periode: %s - %s\n", FormatDateID(rng.Start), FormatDateID(rng.End))
	fmt.Fprintf(&b, "Generated: %s %02d.%02d.%02d\n\n",
		FormatDateID(generatedAt), generatedAt.Hour(), generatedAt.Minute(), generatedAt.Second())

	b.WriteString("=== RINGKASAN KEUANGAN ===\n")
	fmt.Fprintf(&b, "Total Pendapatan: %s\n", FormatRupiah(data.TotalRevenue))
	fmt.Fprintf(&b, "Total Piutang: %s\n", FormatRupiah(data.TotalOutstanding))
	fmt.Fprintf(&b, "Invoice Terbayar: %d\n", data.PaidInvoices)
	fmt.Fprintf(&b, "Invoice Pending: %d\n", data.PendingInvoices)
	fmt.Fprintf(&b, "Invoice Terlambat: %d\n", data.OverdueInvoices)
	fmt.Fprintf(&b, "Rata-rata Nilai Invoice: %s\n\n", FormatRupiah(data.AverageInvoiceValue))

	b.WriteString("=== BREAKDOWN STATUS ===\n")
	for _, item := range data.StatusBreakdown {
		fmt.Fprintf(&b, "%s: %d invoice (%s)\n",
			strings.ToUpper(item.Status), item.Count, FormatRupiah(item.Amount))
	}

	b.WriteString("\n=== PENDAPATAN BULANAN ===\n")
	for _, item := range data.MonthlyRevenue {
		fmt.Fprintf(&b, "%s: %s (%d invoice)\n",
			item.Month, FormatRupiah(item.Revenue), item.Invoices)
	}

	return strings.TrimRight(b.String(), "\n")
}

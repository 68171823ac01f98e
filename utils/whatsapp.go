package utils

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/yourusername/katalika-invoicing/models"
)

// FormatDateID renders a date the way id-ID locales do: d/m/yyyy.
func FormatDateID(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// WhatsAppMessage builds the Indonesian payment-reminder text sent to a
// customer along with their invoice.
func WhatsAppMessage(inv models.Invoice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Halo %s,\n\n", inv.CustomerName)
	b.WriteString("Berikut adalah invoice untuk pesanan Anda dari Studio Katalika:\n\n")
	fmt.Fprintf(&b, "📋 Invoice No: %s\n", inv.InvoiceNumber)
	fmt.Fprintf(&b, "📅 Tanggal: %s\n", FormatDateID(inv.CreatedAt))
	fmt.Fprintf(&b, "💰 Total: %s\n", FormatRupiah(inv.Total))
	fmt.Fprintf(&b, "⏰ Jatuh Tempo: %s\n\n", FormatDateID(inv.DueDate))
	b.WriteString("Detail Pembayaran:\n")
	b.WriteString("🏦 Bank BCA: 1234567890 a.n Studio Katalika\n")
	b.WriteString("🏦 Bank Mandiri: 0987654321 a.n Studio Katalika\n\n")
	b.WriteString("Terima kasih atas kepercayaan Anda kepada Studio Katalika.\n\n")
	b.WriteString("Hormat kami,\nStudio Katalika Team")
	return b.String()
}

// WhatsAppShareURL returns the wa.me deep link for an invoice. The customer
// phone is reduced to digits only, as wa.me requires.
func WhatsAppShareURL(inv models.Invoice) string {
	var digits strings.Builder
	for _, r := range inv.CustomerPhone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits.String(), url.QueryEscape(WhatsAppMessage(inv)))
}

package engine

import (
	"time"

	"github.com/yourusername/katalika-invoicing/models"
	"github.com/yourusername/katalika-invoicing/utils"
)

// StatusAll disables status filtering in BuildReport.
const StatusAll = "all"

const recentTransactionLimit = 10

// BuildReport aggregates the invoice collection over a date range and an
// optional status filter. Pure: safe to recompute on every filter change.
//
// The range is inclusive on both ends, with End extended to end-of-day so a
// range built from bare dates covers its last day. "Overdue" counts are a
// derived view (status sent with the due date behind now); the stored status
// is never touched, and the status breakdown groups by stored status.
func BuildReport(invoices []models.Invoice, rng models.DateRange, statusFilter string, now time.Time) models.ReportData {
	endOfDay := time.Date(rng.End.Year(), rng.End.Month(), rng.End.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), rng.End.Location())

	filtered := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.CreatedAt.Before(rng.Start) || inv.CreatedAt.After(endOfDay) {
			continue
		}
		if statusFilter != StatusAll && statusFilter != "" && string(inv.Status) != statusFilter {
			continue
		}
		filtered = append(filtered, inv)
	}

	data := models.ReportData{
		MonthlyRevenue:     []models.MonthlyRevenue{},
		StatusBreakdown:    []models.StatusCount{},
		RecentTransactions: []models.Invoice{},
	}

	sum := 0.0
	monthIndex := map[string]int{}
	statusIndex := map[string]int{}
	for _, inv := range filtered {
		sum += inv.Total

		switch {
		case inv.Status == models.InvoicePaid:
			data.PaidInvoices++
			data.TotalRevenue += inv.Total

			label := utils.MonthLabelID(inv.CreatedAt)
			i, ok := monthIndex[label]
			if !ok {
				i = len(data.MonthlyRevenue)
				monthIndex[label] = i
				data.MonthlyRevenue = append(data.MonthlyRevenue, models.MonthlyRevenue{Month: label})
			}
			data.MonthlyRevenue[i].Revenue += inv.Total
			data.MonthlyRevenue[i].Invoices++
		case inv.Status == models.InvoiceSent:
			data.PendingInvoices++
			data.TotalOutstanding += inv.Total
			if inv.DueDate.Before(now) {
				data.OverdueInvoices++
			}
		}

		status := string(inv.Status)
		i, ok := statusIndex[status]
		if !ok {
			i = len(data.StatusBreakdown)
			statusIndex[status] = i
			data.StatusBreakdown = append(data.StatusBreakdown, models.StatusCount{Status: status})
		}
		data.StatusBreakdown[i].Count++
		data.StatusBreakdown[i].Amount += inv.Total

		if len(data.RecentTransactions) < recentTransactionLimit {
			data.RecentTransactions = append(data.RecentTransactions, inv)
		}
	}

	if len(filtered) > 0 {
		data.AverageInvoiceValue = sum / float64(len(filtered))
	}
	return data
}

package models

import "time"

// DateRange bounds a report query. End is extended to end-of-day when
// filtering so a range built from bare dates is inclusive on both sides.
type DateRange struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
}

// MonthlyRevenue is one month's paid-invoice rollup.
type MonthlyRevenue struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Invoices int     `json:"invoices"`
}

// StatusCount is the per-status slice of the filtered invoice set.
type StatusCount struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// ReportData is the full output of the reporting aggregator. It is derived
// from the invoice collection on every request and never stored.
//
// OverdueInvoices is a reporting view: an invoice counts as overdue when its
// stored status is "sent" and its due date has passed. The stored status
// field is never mutated by reporting.
type ReportData struct {
	TotalRevenue        float64          `json:"totalRevenue"`
	PaidInvoices        int              `json:"paidInvoices"`
	PendingInvoices     int              `json:"pendingInvoices"`
	OverdueInvoices     int              `json:"overdueInvoices"`
	TotalOutstanding    float64          `json:"totalOutstanding"`
	AverageInvoiceValue float64          `json:"averageInvoiceValue"`
	MonthlyRevenue      []MonthlyRevenue `json:"monthlyRevenue"`
	StatusBreakdown     []StatusCount    `json:"statusBreakdown"`
	RecentTransactions  []Invoice        `json:"recentTransactions"`
}

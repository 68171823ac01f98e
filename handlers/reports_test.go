package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/katalika-invoicing/models"
	"github.com/yourusername/katalika-invoicing/store"
)

func seedInvoicesForReport(s *store.MemoryStore, now time.Time) {
	s.SaveInvoices([]models.Invoice{
		{ID: "inv-1", Status: models.InvoicePaid, CreatedAt: now.AddDate(0, 0, -3), Total: 100000},
		{ID: "inv-2", Status: models.InvoicePaid, CreatedAt: now.AddDate(0, 0, -2), Total: 250000},
		{ID: "inv-3", Status: models.InvoicePaid, CreatedAt: now.AddDate(0, 0, -1), Total: 50000},
		{ID: "inv-4", Status: models.InvoiceSent, CreatedAt: now.AddDate(0, 0, -1), Total: 75000,
			DueDate: now.AddDate(0, 0, -1)}, // already past due
	})
}

func reportRangeQuery(now time.Time) string {
	start := now.AddDate(0, 0, -7).Format("2006-01-02")
	end := now.Format("2006-01-02")
	return fmt.Sprintf("start_date=%s&end_date=%s", start, end)
}

func TestGetReport(t *testing.T) {
	router, s := setupTestRouter()
	now := time.Now()
	seedInvoicesForReport(s, now)

	w := doJSON(router, http.MethodGet, "/reports?"+reportRangeQuery(now), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decode[models.ReportData](t, w)
	assert.Equal(t, 400000.0, data.TotalRevenue)
	assert.Equal(t, 3, data.PaidInvoices)
	assert.Equal(t, 1, data.PendingInvoices)
	assert.Equal(t, 1, data.OverdueInvoices)
	assert.Equal(t, 75000.0, data.TotalOutstanding)
	assert.Len(t, data.RecentTransactions, 4)
}

func TestGetReportStatusFilter(t *testing.T) {
	router, s := setupTestRouter()
	now := time.Now()
	seedInvoicesForReport(s, now)

	w := doJSON(router, http.MethodGet, "/reports?status=paid&"+reportRangeQuery(now), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decode[models.ReportData](t, w)
	assert.Equal(t, 3, data.PaidInvoices)
	assert.Equal(t, 0, data.PendingInvoices)
	assert.Len(t, data.RecentTransactions, 3)
}

func TestGetReportBadDate(t *testing.T) {
	router, _ := setupTestRouter()

	w := doJSON(router, http.MethodGet, "/reports?start_date=31-08-2026", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportReport(t *testing.T) {
	router, s := setupTestRouter()
	now := time.Now()
	seedInvoicesForReport(s, now)

	w := doJSON(router, http.MethodGet, "/reports/export?"+reportRangeQuery(now), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "laporan-keuangan-")
	assert.Contains(t, w.Body.String(), "LAPORAN KEUANGAN STUDIO KATALIKA")
	assert.Contains(t, w.Body.String(), "Total Pendapatan: Rp 400.000")
}

func TestGetDashboard(t *testing.T) {
	router, s := setupTestRouter()

	s.SaveCustomers([]models.Customer{{ID: "cust-1"}, {ID: "cust-2"}})
	s.SaveOrders([]models.Order{
		{ID: "order-1", Status: models.OrderPending, Total: 100000},
		{ID: "order-2", Status: models.OrderCompleted, Total: 50000},
	})
	s.SaveInvoices([]models.Invoice{
		{ID: "inv-1", Status: models.InvoicePaid, Total: 111000},
		{ID: "inv-2", Status: models.InvoiceSent, Total: 55500},
	})

	w := doJSON(router, http.MethodGet, "/dashboard", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decode[DashboardData](t, w)
	assert.Equal(t, 2, data.TotalCustomers)
	assert.Equal(t, 1, data.ActiveOrders)
	assert.Equal(t, 2, data.TotalInvoices)
	assert.Equal(t, 111000.0, data.TotalRevenue)
	assert.Len(t, data.RecentOrders, 2)
	assert.Len(t, data.PendingInvoices, 1)
	assert.Equal(t, "inv-2", data.PendingInvoices[0].ID)
}

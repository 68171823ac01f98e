package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/katalika-invoicing/models"
	"github.com/yourusername/katalika-invoicing/store"
)

type DashboardHandler struct {
	store store.Store
}

func NewDashboardHandler(s store.Store) *DashboardHandler {
	return &DashboardHandler{store: s}
}

type DashboardData struct {
	TotalCustomers  int              `json:"totalCustomers"`
	ActiveOrders    int              `json:"activeOrders"`
	TotalInvoices   int              `json:"totalInvoices"`
	TotalRevenue    float64          `json:"totalRevenue"`
	RecentOrders    []models.Order   `json:"recentOrders"`
	PendingInvoices []models.Invoice `json:"pendingInvoices"`
}

// GetDashboard summarizes the three collections for the landing view:
// customer count, orders not yet completed, paid revenue, the first five
// orders and the first five sent invoices.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	customers, err := h.store.GetCustomers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}
	orders, err := h.store.GetOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	invoices, err := h.store.GetInvoices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoices"})
		return
	}

	data := DashboardData{
		TotalCustomers:  len(customers),
		TotalInvoices:   len(invoices),
		RecentOrders:    []models.Order{},
		PendingInvoices: []models.Invoice{},
	}

	for _, order := range orders {
		if order.Status != models.OrderCompleted {
			data.ActiveOrders++
		}
		if len(data.RecentOrders) < 5 {
			data.RecentOrders = append(data.RecentOrders, order)
		}
	}

	for _, invoice := range invoices {
		if invoice.Status == models.InvoicePaid {
			data.TotalRevenue += invoice.Total
		}
		if invoice.Status == models.InvoiceSent && len(data.PendingInvoices) < 5 {
			data.PendingInvoices = append(data.PendingInvoices, invoice)
		}
	}

	c.JSON(http.StatusOK, data)
}

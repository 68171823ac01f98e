package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/katalika-invoicing/engine"
	"github.com/yourusername/katalika-invoicing/models"
	"github.com/yourusername/katalika-invoicing/store"
	"github.com/yourusername/katalika-invoicing/utils"
)

type InvoiceHandler struct {
	store  store.Store
	engine *engine.Engine
}

func NewInvoiceHandler(s store.Store, e *engine.Engine) *InvoiceHandler {
	return &InvoiceHandler{store: s, engine: e}
}

type InvoiceRequest struct {
	OrderID string               `json:"orderId" binding:"required"`
	DueDate time.Time            `json:"dueDate" binding:"required"`
	Status  models.InvoiceStatus `json:"status"`
	Notes   string               `json:"notes"`
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.store.GetInvoices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoices"})
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	h.upsertInvoice(c, "")
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	h.upsertInvoice(c, c.Param("id"))
}

// upsertInvoice resolves the order and its customer, enforces the
// one-invoice-per-order rule and derives the invoice through the engine.
// Edits keep the invoice's id, number and creation timestamp.
func (h *InvoiceHandler) upsertInvoice(c *gin.Context, editID string) {
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = models.InvoiceDraft
	}
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice status"})
		return
	}

	orders, err := h.store.GetOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	var order *models.Order
	for i := range orders {
		if orders[i].ID == req.OrderID {
			order = &orders[i]
			break
		}
	}
	if order == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order not found"})
		return
	}

	customers, err := h.store.GetCustomers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}
	customer, ok := findCustomer(customers, order.CustomerID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer not found"})
		return
	}

	invoices, err := h.store.GetInvoices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoices"})
		return
	}

	var existing *models.Invoice
	existingIdx := -1
	if editID != "" {
		for i := range invoices {
			if invoices[i].ID == editID {
				existing = &invoices[i]
				existingIdx = i
				break
			}
		}
		if existing == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
	}

	// One invoice per order: the order must not be referenced by any other
	// invoice than the one being edited.
	for _, inv := range invoices {
		if inv.OrderID == req.OrderID && (existing == nil || inv.ID != existing.ID) {
			c.JSON(http.StatusConflict, gin.H{"error": "Order already has an invoice"})
			return
		}
	}

	invoice, err := h.engine.BuildInvoice(*order, customer, req.DueDate, status, req.Notes, existing)
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build invoice"})
		return
	}

	if existingIdx >= 0 {
		invoices[existingIdx] = invoice
	} else {
		invoices = append(invoices, invoice)
	}
	if err := h.store.SaveInvoices(invoices); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save invoices"})
		return
	}

	if existingIdx >= 0 {
		c.JSON(http.StatusOK, invoice)
	} else {
		c.JSON(http.StatusCreated, invoice)
	}
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id := c.Param("id")

	invoices, err := h.store.GetInvoices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoices"})
		return
	}

	kept := invoices[:0]
	found := false
	for _, invoice := range invoices {
		if invoice.ID == id {
			found = true
			continue
		}
		kept = append(kept, invoice)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	if err := h.store.SaveInvoices(kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save invoices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted"})
}

// ShareInvoice returns the WhatsApp deep link and message body for sending
// the invoice to its customer.
func (h *InvoiceHandler) ShareInvoice(c *gin.Context) {
	id := c.Param("id")

	invoices, err := h.store.GetInvoices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoices"})
		return
	}

	for _, invoice := range invoices {
		if invoice.ID == id {
			c.JSON(http.StatusOK, gin.H{
				"url":     utils.WhatsAppShareURL(invoice),
				"message": utils.WhatsAppMessage(invoice),
			})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
}

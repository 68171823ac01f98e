package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/katalika-invoicing/engine"
	"github.com/yourusername/katalika-invoicing/models"
	"github.com/yourusername/katalika-invoicing/store"
)

type OrderHandler struct {
	store  store.Store
	engine *engine.Engine
}

func NewOrderHandler(s store.Store, e *engine.Engine) *OrderHandler {
	return &OrderHandler{store: s, engine: e}
}

type OrderRequest struct {
	CustomerID string             `json:"customerId" binding:"required"`
	Items      []engine.ItemInput `json:"items" binding:"required,min=1,dive"`
	Status     models.OrderStatus `json:"status"`
	Notes      string             `json:"notes"`
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.store.GetOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	h.upsertOrder(c, "")
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	h.upsertOrder(c, c.Param("id"))
}

// upsertOrder runs the shared create/edit flow: resolve the customer,
// rebuild the order through the engine and replace the collection. Nothing
// is written when validation fails.
func (h *OrderHandler) upsertOrder(c *gin.Context, editID string) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = models.OrderPending
	}
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
		return
	}

	customers, err := h.store.GetCustomers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}
	customer, ok := findCustomer(customers, req.CustomerID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer not found"})
		return
	}

	orders, err := h.store.GetOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	var existing *models.Order
	existingIdx := -1
	if editID != "" {
		for i := range orders {
			if orders[i].ID == editID {
				existing = &orders[i]
				existingIdx = i
				break
			}
		}
		if existing == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
	}

	order, err := h.engine.BuildOrder(customer, req.Items, status, req.Notes, existing)
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build order"})
		return
	}

	if existingIdx >= 0 {
		orders[existingIdx] = order
	} else {
		orders = append(orders, order)
	}
	if err := h.store.SaveOrders(orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save orders"})
		return
	}

	if existingIdx >= 0 {
		c.JSON(http.StatusOK, order)
	} else {
		c.JSON(http.StatusCreated, order)
	}
}

// DeleteOrder removes the order by id. An invoice already derived from it
// keeps its copied items and totals.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")

	orders, err := h.store.GetOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	kept := orders[:0]
	found := false
	for _, order := range orders {
		if order.ID == id {
			found = true
			continue
		}
		kept = append(kept, order)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := h.store.SaveOrders(kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

// ListAvailableOrders returns the orders not yet backed by an invoice. Pass
// invoice_id when editing so that invoice's own order stays listed.
func (h *OrderHandler) ListAvailableOrders(c *gin.Context) {
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

	c.JSON(http.StatusOK, engine.AvailableOrders(orders, invoices, c.Query("invoice_id")))
}

func findCustomer(customers []models.Customer, id string) (models.Customer, bool) {
	for _, customer := range customers {
		if customer.ID == id {
			return customer, true
		}
	}
	return models.Customer{}, false
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/katalika-invoicing/models"
	"github.com/yourusername/katalika-invoicing/store"
	"github.com/yourusername/katalika-invoicing/utils"
)

type CustomerHandler struct {
	store store.Store
	gen   utils.Generator
}

func NewCustomerHandler(s store.Store, gen utils.Generator) *CustomerHandler {
	return &CustomerHandler{store: s, gen: gen}
}

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
	Company string `json:"company"`
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.store.GetCustomers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customers, err := h.store.GetCustomers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}

	customer := models.Customer{
		ID:        h.gen.NewID(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Company:   req.Company,
		CreatedAt: time.Now(),
	}

	customers = append(customers, customer)
	if err := h.store.SaveCustomers(customers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save customers"})
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer replaces the whole record, keeping only the id and the
// original creation timestamp.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id := c.Param("id")

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customers, err := h.store.GetCustomers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}

	for i, existing := range customers {
		if existing.ID != id {
			continue
		}
		customers[i] = models.Customer{
			ID:        existing.ID,
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Address:   req.Address,
			Company:   req.Company,
			CreatedAt: existing.CreatedAt,
		}
		if err := h.store.SaveCustomers(customers); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save customers"})
			return
		}
		c.JSON(http.StatusOK, customers[i])
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
}

// DeleteCustomer removes the record by id. Orders and invoices referencing
// the customer are left untouched; they carry their own snapshots.
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id := c.Param("id")

	customers, err := h.store.GetCustomers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}

	kept := customers[:0]
	found := false
	for _, customer := range customers {
		if customer.ID == id {
			found = true
			continue
		}
		kept = append(kept, customer)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	if err := h.store.SaveCustomers(kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}

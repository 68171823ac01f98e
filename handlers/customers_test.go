package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yourusername/katalika-invoicing/engine"
	"github.com/yourusername/katalika-invoicing/models"
	"github.com/yourusername/katalika-invoicing/store"
	"github.com/yourusername/katalika-invoicing/utils"
)

// setupTestRouter wires every business handler against a fresh in-memory
// store, a sequential id generator and a fixed clock.
func setupTestRouter() (*gin.Engine, *store.MemoryStore) {
	gin.SetMode(gin.TestMode)

	s := store.NewMemoryStore()
	gen := &utils.SequenceGenerator{Prefix: "rec"}
	clock := func() time.Time {
		return time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)
	}
	eng := engine.NewWithClock(gen, clock)

	customerHandler := NewCustomerHandler(s, gen)
	orderHandler := NewOrderHandler(s, eng)
	invoiceHandler := NewInvoiceHandler(s, eng)
	reportHandler := NewReportHandler(s)
	dashboardHandler := NewDashboardHandler(s)

	router := gin.New()
	router.GET("/customers", customerHandler.ListCustomers)
	router.POST("/customers", customerHandler.CreateCustomer)
	router.PUT("/customers/:id", customerHandler.UpdateCustomer)
	router.DELETE("/customers/:id", customerHandler.DeleteCustomer)

	router.GET("/orders", orderHandler.ListOrders)
	router.GET("/orders/available", orderHandler.ListAvailableOrders)
	router.POST("/orders", orderHandler.CreateOrder)
	router.PUT("/orders/:id", orderHandler.UpdateOrder)
	router.DELETE("/orders/:id", orderHandler.DeleteOrder)

	router.GET("/invoices", invoiceHandler.ListInvoices)
	router.POST("/invoices", invoiceHandler.CreateInvoice)
	router.PUT("/invoices/:id", invoiceHandler.UpdateInvoice)
	router.DELETE("/invoices/:id", invoiceHandler.DeleteInvoice)
	router.GET("/invoices/:id/whatsapp", invoiceHandler.ShareInvoice)

	router.GET("/reports", reportHandler.GetReport)
	router.GET("/reports/export", reportHandler.ExportReport)

	router.GET("/dashboard", dashboardHandler.GetDashboard)
	return router, s
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		buf = bytes.NewBuffer(data)
	} else {
		buf = bytes.NewBuffer(nil)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateCustomer(t *testing.T) {
	router, s := setupTestRouter()

	w := doJSON(router, http.MethodPost, "/customers", CustomerRequest{
		Name:    "Budi Santoso",
		Email:   "budi@example.com",
		Phone:   "081234567890",
		Address: "Jl. Merdeka No. 1, Jakarta",
		Company: "PT Maju",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	created := decode[models.Customer](t, w)
	assert.Equal(t, "rec-1", created.ID)
	assert.Equal(t, "Budi Santoso", created.Name)
	assert.False(t, created.CreatedAt.IsZero())

	customers, err := s.GetCustomers()
	assert.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestCreateCustomerValidation(t *testing.T) {
	router, s := setupTestRouter()

	w := doJSON(router, http.MethodPost, "/customers", gin.H{
		"name": "No Contact Info",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	customers, _ := s.GetCustomers()
	assert.Empty(t, customers)
}

func TestUpdateCustomerKeepsIDAndCreatedAt(t *testing.T) {
	router, s := setupTestRouter()

	createdAt := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	s.SaveCustomers([]models.Customer{{
		ID: "cust-1", Name: "Budi", Email: "budi@example.com",
		Phone: "0812", Address: "Jakarta", CreatedAt: createdAt,
	}})

	w := doJSON(router, http.MethodPut, "/customers/cust-1", CustomerRequest{
		Name:    "Budi Santoso",
		Email:   "budi.s@example.com",
		Phone:   "0813",
		Address: "Bandung",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	updated := decode[models.Customer](t, w)
	assert.Equal(t, "cust-1", updated.ID)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.Equal(t, "Budi Santoso", updated.Name)
	assert.Equal(t, "Bandung", updated.Address)
}

func TestDeleteCustomerLeavesOrdersAlone(t *testing.T) {
	router, s := setupTestRouter()

	s.SaveCustomers([]models.Customer{{
		ID: "cust-1", Name: "Budi", Email: "b@example.com", Phone: "0812", Address: "Jakarta",
	}})
	s.SaveOrders([]models.Order{{ID: "order-1", CustomerID: "cust-1", CustomerName: "Budi"}})

	w := doJSON(router, http.MethodDelete, "/customers/cust-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	customers, _ := s.GetCustomers()
	assert.Empty(t, customers)

	// The order keeps its stale reference and snapshot; no cascade.
	orders, _ := s.GetOrders()
	assert.Len(t, orders, 1)
	assert.Equal(t, "cust-1", orders[0].CustomerID)
	assert.Equal(t, "Budi", orders[0].CustomerName)
}

func TestDeleteCustomerNotFound(t *testing.T) {
	router, _ := setupTestRouter()
	w := doJSON(router, http.MethodDelete, "/customers/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

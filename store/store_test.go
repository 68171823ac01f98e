package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yourusername/katalika-invoicing/models"
)

func setupStores(t *testing.T) map[string]Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	gs, err := NewGormStore(db)
	assert.NoError(t, err)

	return map[string]Store{
		"gorm":   gs,
		"memory": NewMemoryStore(),
	}
}

func TestEmptyCollectionsReadAsEmpty(t *testing.T) {
	for name, s := range setupStores(t) {
		t.Run(name, func(t *testing.T) {
			customers, err := s.GetCustomers()
			assert.NoError(t, err)
			assert.Empty(t, customers)

			orders, err := s.GetOrders()
			assert.NoError(t, err)
			assert.Empty(t, orders)

			invoices, err := s.GetInvoices()
			assert.NoError(t, err)
			assert.Empty(t, invoices)

			user, err := s.GetUser()
			assert.NoError(t, err)
			assert.Nil(t, user)
		})
	}
}

func TestSaveReplacesWholeCollection(t *testing.T) {
	for name, s := range setupStores(t) {
		t.Run(name, func(t *testing.T) {
			first := []models.Customer{
				{ID: "1", Name: "Budi", Email: "budi@example.com", Phone: "0812", Address: "Jakarta"},
				{ID: "2", Name: "Siti", Email: "siti@example.com", Phone: "0813", Address: "Bandung"},
			}
			assert.NoError(t, s.SaveCustomers(first))

			got, err := s.GetCustomers()
			assert.NoError(t, err)
			assert.Len(t, got, 2)
			assert.Equal(t, "Budi", got[0].Name)

			// Second save is a full replacement, not a merge.
			second := []models.Customer{first[1]}
			assert.NoError(t, s.SaveCustomers(second))

			got, err = s.GetCustomers()
			assert.NoError(t, err)
			assert.Len(t, got, 1)
			assert.Equal(t, "Siti", got[0].Name)
		})
	}
}

func TestOrderAndInvoiceRoundtrip(t *testing.T) {
	createdAt := time.Date(2026, time.August, 10, 9, 30, 0, 0, time.UTC)

	for name, s := range setupStores(t) {
		t.Run(name, func(t *testing.T) {
			orders := []models.Order{{
				ID:           "order-1",
				CustomerID:   "cust-1",
				CustomerName: "Budi",
				Items: []models.OrderItem{
					{ID: "item-1", Name: "Logo", Quantity: 2, Price: 50000, Total: 100000},
				},
				Subtotal:  100000,
				Tax:       11000,
				Total:     111000,
				Status:    models.OrderPending,
				CreatedAt: createdAt,
			}}
			assert.NoError(t, s.SaveOrders(orders))

			gotOrders, err := s.GetOrders()
			assert.NoError(t, err)
			assert.Equal(t, orders, gotOrders)

			invoices := []models.Invoice{{
				ID:            "inv-1",
				OrderID:       "order-1",
				CustomerID:    "cust-1",
				Items:         orders[0].Items,
				Subtotal:      100000,
				Tax:           11000,
				Total:         111000,
				Status:        models.InvoiceDraft,
				CreatedAt:     createdAt,
				DueDate:       createdAt.AddDate(0, 1, 0),
				InvoiceNumber: "INV-202608-0001",
			}}
			assert.NoError(t, s.SaveInvoices(invoices))

			gotInvoices, err := s.GetInvoices()
			assert.NoError(t, err)
			assert.Equal(t, invoices, gotInvoices)
		})
	}
}

func TestUserSession(t *testing.T) {
	for name, s := range setupStores(t) {
		t.Run(name, func(t *testing.T) {
			lastLogin := time.Date(2026, time.August, 31, 8, 0, 0, 0, time.UTC)
			user := models.User{
				ID:        "1",
				Email:     "admin@studiokatalika.com",
				Name:      "Administrator",
				Role:      "admin",
				CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				LastLogin: &lastLogin,
			}
			assert.NoError(t, s.SaveUser(user))

			got, err := s.GetUser()
			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.Equal(t, user, *got)

			assert.NoError(t, s.DeleteUser())
			got, err = s.GetUser()
			assert.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestMemoryStoreCopiesOnReadAndWrite(t *testing.T) {
	s := NewMemoryStore()
	in := []models.Customer{{ID: "1", Name: "Budi"}}
	assert.NoError(t, s.SaveCustomers(in))

	in[0].Name = "changed after save"
	got, err := s.GetCustomers()
	assert.NoError(t, err)
	assert.Equal(t, "Budi", got[0].Name)

	got[0].Name = "changed after read"
	again, err := s.GetCustomers()
	assert.NoError(t, err)
	assert.Equal(t, "Budi", again[0].Name)
}

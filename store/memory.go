package store

import "github.com/yourusername/katalika-invoicing/models"

// MemoryStore is an in-memory Store for tests. Collections are copied on
// read and write so callers can't alias the stored slices.
type MemoryStore struct {
	customers []models.Customer
	orders    []models.Order
	invoices  []models.Invoice
	user      *models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func (s *MemoryStore) GetCustomers() ([]models.Customer, error) {
	return copySlice(s.customers), nil
}

func (s *MemoryStore) SaveCustomers(customers []models.Customer) error {
	s.customers = copySlice(customers)
	return nil
}

func (s *MemoryStore) GetOrders() ([]models.Order, error) {
	return copySlice(s.orders), nil
}

func (s *MemoryStore) SaveOrders(orders []models.Order) error {
	s.orders = copySlice(orders)
	return nil
}

func (s *MemoryStore) GetInvoices() ([]models.Invoice, error) {
	return copySlice(s.invoices), nil
}

func (s *MemoryStore) SaveInvoices(invoices []models.Invoice) error {
	s.invoices = copySlice(invoices)
	return nil
}

func (s *MemoryStore) GetUser() (*models.User, error) {
	if s.user == nil {
		return nil, nil
	}
	u := *s.user
	return &u, nil
}

func (s *MemoryStore) SaveUser(user models.User) error {
	s.user = &user
	return nil
}

func (s *MemoryStore) DeleteUser() error {
	s.user = nil
	return nil
}

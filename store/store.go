// Package store is the persistence port for the three record collections
// and the session user. The contract mirrors the application's original
// browser-local storage: callers read a whole collection, mutate it in
// memory and write the whole collection back. Last write wins; there are no
// partial updates and no optimistic concurrency.
package store

import "github.com/yourusername/katalika-invoicing/models"

// Collection keys. Kept stable so existing databases keep working.
const (
	KeyCustomers = "studio_katalika_customers"
	KeyOrders    = "studio_katalika_orders"
	KeyInvoices  = "studio_katalika_invoices"
	KeyUser      = "studio_katalika_user"
)

// Store is the record store consumed by the handlers. A missing collection
// reads as an empty slice, not an error. Get/Save failures are wrapped
// storage errors; callers surface them and never retry.
type Store interface {
	GetCustomers() ([]models.Customer, error)
	SaveCustomers([]models.Customer) error

	GetOrders() ([]models.Order, error)
	SaveOrders([]models.Order) error

	GetInvoices() ([]models.Invoice, error)
	SaveInvoices([]models.Invoice) error

	// GetUser returns the persisted session user, or nil if nobody is
	// logged in. DeleteUser clears it.
	GetUser() (*models.User, error)
	SaveUser(models.User) error
	DeleteUser() error
}

// Package engine builds order and invoice records and derives reports from
// them. Every operation is a pure function over its inputs plus the injected
// id generator and clock; persistence stays with the caller.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/yourusername/katalika-invoicing/models"
	"github.com/yourusername/katalika-invoicing/utils"
)

// Sentinel validation errors. Callers surface these to the user; nothing is
// written when any of them fires.
var (
	ErrNoCustomer       = errors.New("order requires an existing customer")
	ErrNoItems          = errors.New("order requires at least one item")
	ErrInvalidQuantity  = errors.New("item quantity must be at least 1")
	ErrCustomerMismatch = errors.New("customer does not match the order's customer")
)

// ValidationError wraps a sentinel error with detail about the offending
// input.
type ValidationError struct {
	Err     error
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ItemInput is the caller-supplied shape of one order line. The line total
// is always derived, never accepted.
type ItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"min=0"`
}

// Engine assembles records. Clock defaults to time.Now; tests override it
// together with the generator for deterministic output.
type Engine struct {
	gen   utils.Generator
	clock func() time.Time
}

func New(gen utils.Generator) *Engine {
	return &Engine{gen: gen, clock: time.Now}
}

// NewWithClock is New with an explicit clock. For tests.
func NewWithClock(gen utils.Generator, clock func() time.Time) *Engine {
	return &Engine{gen: gen, clock: clock}
}

// BuildOrder assembles a complete order for the given customer. Each item
// gets a fresh id and a derived line total; subtotal, tax and total are
// recomputed from scratch. When existing is non-nil (edit flow) the order
// keeps its id and original creation timestamp.
func (e *Engine) BuildOrder(customer models.Customer, items []ItemInput, status models.OrderStatus, notes string, existing *models.Order) (models.Order, error) {
	if customer.ID == "" {
		return models.Order{}, &ValidationError{Err: ErrNoCustomer}
	}
	if len(items) == 0 {
		return models.Order{}, &ValidationError{Err: ErrNoItems}
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	subtotal := 0.0
	for i, item := range items {
		if item.Quantity < 1 {
			return models.Order{}, &ValidationError{
				Err:     ErrInvalidQuantity,
				Details: fmt.Sprintf("item %d (%s) has quantity %d", i+1, item.Name, item.Quantity),
			}
		}
		total := utils.ComputeLineTotal(item.Quantity, item.Price)
		orderItems = append(orderItems, models.OrderItem{
			ID:          e.gen.NewID(),
			Name:        item.Name,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Total:       total,
		})
		subtotal += total
	}

	tax := utils.ComputeTax(subtotal)

	order := models.Order{
		ID:           e.gen.NewID(),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Items:        orderItems,
		Subtotal:     subtotal,
		Tax:          tax,
		Total:        subtotal + tax,
		Status:       status,
		CreatedAt:    e.clock(),
		Notes:        notes,
	}
	if existing != nil {
		order.ID = existing.ID
		order.CreatedAt = existing.CreatedAt
	}
	return order, nil
}

// BuildInvoice derives an invoice from an order. Items and money figures
// are inherited verbatim from the order (not recomputed), and the customer
// contact fields are frozen onto the invoice. When existing is non-nil the
// invoice keeps its id, invoice number and original creation timestamp;
// otherwise both a fresh id and a fresh invoice number are generated.
//
// Ensuring at most one invoice per order is the caller's job; see
// AvailableOrders.
func (e *Engine) BuildInvoice(order models.Order, customer models.Customer, dueDate time.Time, status models.InvoiceStatus, notes string, existing *models.Invoice) (models.Invoice, error) {
	if customer.ID == "" || order.ID == "" {
		return models.Invoice{}, &ValidationError{Err: ErrNoCustomer}
	}
	if customer.ID != order.CustomerID {
		return models.Invoice{}, &ValidationError{
			Err:     ErrCustomerMismatch,
			Details: fmt.Sprintf("customer %s, order references %s", customer.ID, order.CustomerID),
		}
	}

	now := e.clock()
	invoice := models.Invoice{
		ID:              e.gen.NewID(),
		OrderID:         order.ID,
		CustomerID:      order.CustomerID,
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerPhone:   customer.Phone,
		CustomerAddress: customer.Address,
		Items:           order.Items,
		Subtotal:        order.Subtotal,
		Tax:             order.Tax,
		Total:           order.Total,
		Status:          status,
		CreatedAt:       now,
		DueDate:         dueDate,
		Notes:           notes,
		InvoiceNumber:   e.gen.NewInvoiceNumber(now),
	}
	if existing != nil {
		invoice.ID = existing.ID
		invoice.InvoiceNumber = existing.InvoiceNumber
		invoice.CreatedAt = existing.CreatedAt
	}
	return invoice, nil
}

// AvailableOrders returns the orders selectable for a new invoice: those not
// yet referenced by any invoice. When editing, pass the editing invoice's id
// so its own order stays selectable.
func AvailableOrders(orders []models.Order, invoices []models.Invoice, editingInvoiceID string) []models.Order {
	invoiced := make(map[string]string, len(invoices))
	for _, inv := range invoices {
		invoiced[inv.OrderID] = inv.ID
	}

	available := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		invID, taken := invoiced[order.ID]
		if !taken || (editingInvoiceID != "" && invID == editingInvoiceID) {
			available = append(available, order)
		}
	}
	return available
}

package models

import "time"

type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// Valid reports whether s is one of the known invoice statuses.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}

// Invoice is a billed snapshot of an order. Items and money figures are
// copied verbatim from the source order and the customer contact fields are
// frozen at creation time; neither is refreshed when the order or customer
// changes afterwards. InvoiceNumber and CreatedAt are immutable across edits.
type Invoice struct {
	ID              string        `json:"id"`
	OrderID         string        `json:"orderId"`
	CustomerID      string        `json:"customerId"`
	CustomerName    string        `json:"customerName"`
	CustomerEmail   string        `json:"customerEmail"`
	CustomerPhone   string        `json:"customerPhone"`
	CustomerAddress string        `json:"customerAddress"`
	Items           []OrderItem   `json:"items"`
	Subtotal        float64       `json:"subtotal"`
	Tax             float64       `json:"tax"`
	Total           float64       `json:"total"`
	Status          InvoiceStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
	DueDate         time.Time     `json:"dueDate"`
	Notes           string        `json:"notes,omitempty"`
	InvoiceNumber   string        `json:"invoiceNumber"`
}

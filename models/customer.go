package models

import "time"

// Customer is a billing contact. Orders and invoices reference customers by id
// but also carry denormalized copies of the display fields they need, so a
// customer edit (or delete) never rewrites history.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

package models

import "time"

// User is the authenticated session account. The application ships with two
// fixed accounts (admin, user); role is informational only and drives no
// business-logic branching.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"` // admin, user
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

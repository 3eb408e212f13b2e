package entities

import "time"

// User is an account in the user store: platform admins and customers.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// Supervisors are intentionally NOT stored here; see Supervisor.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

package entities

import "time"

// Supervisor is a site supervisor account, kept in its own store.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
type Supervisor struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	ProjectIDs   []string  `json:"project_ids,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

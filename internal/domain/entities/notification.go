package entities

import "time"

// Notification is an in-app notification record created by domain events
// (e.g. quotation approved/rejected). Delivery to external channels is a
// separate concern handled outside this service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (recipient_id-index): recipient_id
type Notification struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

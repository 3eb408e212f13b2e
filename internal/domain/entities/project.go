package entities

import "time"

// ProjectStatus tracks the rough construction phase of a project.
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// Project is a construction project owned by one customer and optionally
// assigned one supervisor.
//
// Storage model (DynamoDB):
//   - PK: id
type Project struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	Location     string        `json:"location,omitempty"`
	CustomerID   string        `json:"customer_id"`
	SupervisorID string        `json:"supervisor_id,omitempty"`
	Status       ProjectStatus `json:"status"`
	StartDate    *time.Time    `json:"start_date,omitempty"`
	EndDate      *time.Time    `json:"end_date,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

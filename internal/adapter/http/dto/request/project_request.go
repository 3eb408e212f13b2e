package request

import "time"

type CreateProjectRequest struct {
	Name         string     `json:"name" binding:"required"`
	Description  string     `json:"description"`
	Location     string     `json:"location"`
	CustomerID   string     `json:"customer_id" binding:"required"`
	SupervisorID string     `json:"supervisor_id"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

type UpdateProjectRequest struct {
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	Location     *string    `json:"location"`
	SupervisorID *string    `json:"supervisor_id"`
	Status       *string    `json:"status"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

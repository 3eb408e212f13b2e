package response

import (
	"time"

	"construtora_xpto/internal/domain/entities"
)

type ProjectResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Location     string     `json:"location,omitempty"`
	CustomerID   string     `json:"customer_id"`
	SupervisorID string     `json:"supervisor_id,omitempty"`
	Status       string     `json:"status"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Location:     p.Location,
		CustomerID:   p.CustomerID,
		SupervisorID: p.SupervisorID,
		Status:       string(p.Status),
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromProjects(ps []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProject(p))
	}
	return out
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidProjectInput  = errors.New("invalid project input")
	ErrInvalidProjectStatus = errors.New("invalid project status")
)

type CreateProjectInput struct {
	Name         string
	Description  string
	Location     string
	CustomerID   string
	SupervisorID string
	StartDate    *time.Time
	EndDate      *time.Time
}

type UpdateProjectInput struct {
	Name         *string
	Description  *string
	Location     *string
	SupervisorID *string
	Status       *entities.ProjectStatus
	StartDate    *time.Time
	EndDate      *time.Time
}

// IProjectUseCase exposes project management.

type IProjectUseCase interface {
	Create(ctx context.Context, input CreateProjectInput) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	Update(ctx context.Context, id string, input UpdateProjectInput) (entities.Project, error)
	Delete(ctx context.Context, id string) error
}

type ProjectUseCase struct {
	repo  interfaces.IProjectRepository
	users interfaces.IUserRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, users interfaces.IUserRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, users: users}
}

func (u *ProjectUseCase) Create(ctx context.Context, input CreateProjectInput) (entities.Project, error) {
	name := strings.TrimSpace(input.Name)
	customerID := strings.TrimSpace(input.CustomerID)
	if name == "" || customerID == "" {
		return entities.Project{}, ErrInvalidProjectInput
	}

	customer, err := u.users.GetByID(ctx, customerID)
	if err != nil {
		return entities.Project{}, err
	}
	if customer.ID == "" || customer.Role != entities.RoleUser {
		return entities.Project{}, ErrUserNotFound
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:           uuid.NewString(),
		Name:         name,
		Description:  strings.TrimSpace(input.Description),
		Location:     strings.TrimSpace(input.Location),
		CustomerID:   customerID,
		SupervisorID: strings.TrimSpace(input.SupervisorID),
		Status:       entities.ProjectStatusPlanning,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	return u.repo.List(ctx)
}

func (u *ProjectUseCase) Update(ctx context.Context, id string, input UpdateProjectInput) (entities.Project, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return entities.Project{}, ErrInvalidProjectInput
		}
		p.Name = name
	}
	if input.Description != nil {
		p.Description = strings.TrimSpace(*input.Description)
	}
	if input.Location != nil {
		p.Location = strings.TrimSpace(*input.Location)
	}
	if input.SupervisorID != nil {
		p.SupervisorID = strings.TrimSpace(*input.SupervisorID)
	}
	if input.Status != nil {
		switch *input.Status {
		case entities.ProjectStatusPlanning, entities.ProjectStatusInProgress,
			entities.ProjectStatusOnHold, entities.ProjectStatusCompleted:
			p.Status = *input.Status
		default:
			return entities.Project{}, ErrInvalidProjectStatus
		}
	}
	if input.StartDate != nil {
		p.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		p.EndDate = input.EndDate
	}
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

func (u *ProjectUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrSupervisorNotFound     = errors.New("supervisor not found")
	ErrInvalidSupervisorID    = errors.New("invalid supervisor id")
	ErrInvalidSupervisorInput = errors.New("invalid supervisor input")
)

type CreateSupervisorInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

type UpdateSupervisorInput struct {
	Name       *string
	Phone      *string
	Password   *string
	ProjectIDs []string
}

// ISupervisorUseCase exposes supervisor account management (admin operations).

type ISupervisorUseCase interface {
	Create(ctx context.Context, input CreateSupervisorInput) (entities.Supervisor, error)
	GetByID(ctx context.Context, id string) (entities.Supervisor, error)
	List(ctx context.Context) ([]entities.Supervisor, error)
	Update(ctx context.Context, id string, input UpdateSupervisorInput) (entities.Supervisor, error)
	Delete(ctx context.Context, id string) error
}

type SupervisorUseCase struct {
	repo interfaces.ISupervisorRepository
}

var _ ISupervisorUseCase = (*SupervisorUseCase)(nil)

func NewSupervisorUseCase(repo interfaces.ISupervisorRepository) *SupervisorUseCase {
	return &SupervisorUseCase{repo: repo}
}

func (u *SupervisorUseCase) Create(ctx context.Context, input CreateSupervisorInput) (entities.Supervisor, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return entities.Supervisor{}, ErrInvalidSupervisorInput
	}

	if existing, err := u.repo.GetByEmail(ctx, email); err != nil {
		return entities.Supervisor{}, err
	} else if existing.ID != "" {
		return entities.Supervisor{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.Supervisor{}, err
	}

	now := time.Now().UTC()
	sup := entities.Supervisor{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(input.Phone),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, sup)
}

func (u *SupervisorUseCase) GetByID(ctx context.Context, id string) (entities.Supervisor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Supervisor{}, ErrInvalidSupervisorID
	}

	sup, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Supervisor{}, err
	}
	if sup.ID == "" {
		return entities.Supervisor{}, ErrSupervisorNotFound
	}
	return sup, nil
}

func (u *SupervisorUseCase) List(ctx context.Context) ([]entities.Supervisor, error) {
	return u.repo.List(ctx)
}

func (u *SupervisorUseCase) Update(ctx context.Context, id string, input UpdateSupervisorInput) (entities.Supervisor, error) {
	sup, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Supervisor{}, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return entities.Supervisor{}, ErrInvalidSupervisorInput
		}
		sup.Name = name
	}
	if input.Phone != nil {
		sup.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Password != nil {
		if *input.Password == "" {
			return entities.Supervisor{}, ErrInvalidSupervisorInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return entities.Supervisor{}, err
		}
		sup.PasswordHash = string(hash)
	}
	if input.ProjectIDs != nil {
		sup.ProjectIDs = input.ProjectIDs
	}
	sup.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, sup)
	if err != nil {
		return entities.Supervisor{}, err
	}
	if updated.ID == "" {
		return entities.Supervisor{}, ErrSupervisorNotFound
	}
	return updated, nil
}

func (u *SupervisorUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

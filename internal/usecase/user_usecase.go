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
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidUserInput = errors.New("invalid user input")
	ErrEmailTaken       = errors.New("email already registered")
)

// CreateUserInput carries admin-supplied customer account data.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// UpdateUserInput carries a partial account edit; nil pointers keep the
// stored value.
type UpdateUserInput struct {
	Name     *string
	Phone    *string
	Password *string
}

// IUserUseCase exposes customer account management (admin operations).

type IUserUseCase interface {
	Create(ctx context.Context, input CreateUserInput) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	ListCustomers(ctx context.Context) ([]entities.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (entities.User, error)
	Delete(ctx context.Context, id string) error
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) Create(ctx context.Context, input CreateUserInput) (entities.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return entities.User{}, ErrInvalidUserInput
	}

	if existing, err := u.repo.GetByEmail(ctx, email); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entities.RoleUser,
		Phone:        strings.TrimSpace(input.Phone),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, user)
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) ListCustomers(ctx context.Context) ([]entities.User, error) {
	return u.repo.ListByRole(ctx, entities.RoleUser)
}

func (u *UserUseCase) Update(ctx context.Context, id string, input UpdateUserInput) (entities.User, error) {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return entities.User{}, ErrInvalidUserInput
		}
		user.Name = name
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Password != nil {
		if *input.Password == "" {
			return entities.User{}, ErrInvalidUserInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return entities.User{}, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *UserUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

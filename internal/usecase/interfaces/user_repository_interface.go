package interfaces

import (
	"context"

	"construtora_xpto/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User (admins + customers).
//
// Lookups return the zero value when the record does not exist; callers decide
// whether that is an error.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	ListByRole(ctx context.Context, role entities.Role) ([]entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
	Delete(ctx context.Context, id string) error
}

package interfaces

import (
	"context"

	"construtora_xpto/internal/domain/entities"
)

// ISupervisorRepository abstracts DynamoDB persistence for Supervisor.

type ISupervisorRepository interface {
	Create(ctx context.Context, s entities.Supervisor) (entities.Supervisor, error)
	GetByID(ctx context.Context, id string) (entities.Supervisor, error)
	GetByEmail(ctx context.Context, email string) (entities.Supervisor, error)
	List(ctx context.Context) ([]entities.Supervisor, error)
	Update(ctx context.Context, s entities.Supervisor) (entities.Supervisor, error)
	Delete(ctx context.Context, id string) error
}

package interfaces

import (
	"context"

	"construtora_xpto/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.Payment, error)
}

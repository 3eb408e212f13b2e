package interfaces

import (
	"context"

	"construtora_xpto/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// The service must be able to:
//   - create a quotation when an admin submits one for a project
//   - transition status conditionally (approve/reject only move pending rows;
//     the condition lives in the store so two concurrent transitions cannot
//     both succeed)
//   - apply generic admin updates (edits, rejected -> pending resubmission)

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Quotation, error)
	// UpdateStatusIfCurrent sets the status only when the stored status still
	// equals from. Returns the zero value when the row is missing or the
	// condition fails.
	UpdateStatusIfCurrent(ctx context.Context, id string, from, to entities.QuotationStatus) (entities.Quotation, error)
	Update(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	Delete(ctx context.Context, id string) error
}

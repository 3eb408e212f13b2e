package interfaces

import (
	"context"

	"construtora_xpto/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.
//
// Records are written by domain events (quotation approved/rejected) and read
// back by the recipient; delivery to external channels is out of scope here.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByRecipientID(ctx context.Context, recipientID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
}

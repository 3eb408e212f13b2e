package usecase

import (
	"context"
	"errors"
	"strings"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"
)

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrInvalidNotificationID = errors.New("invalid notification id")
	ErrInvalidRecipientID    = errors.New("invalid recipient id")
)

// INotificationUseCase exposes in-app notification reads. Records are created
// by domain events (see QuotationUseCase), not through this interface.

type INotificationUseCase interface {
	ListByRecipientID(ctx context.Context, recipientID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

func (u *NotificationUseCase) ListByRecipientID(ctx context.Context, recipientID string) ([]entities.Notification, error) {
	recipientID = strings.TrimSpace(recipientID)
	if recipientID == "" {
		return nil, ErrInvalidRecipientID
	}
	return u.repo.ListByRecipientID(ctx, recipientID)
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}

	n, err := u.repo.MarkRead(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuotationNotFound        = errors.New("quotation not found")
	ErrInvalidQuotationID       = errors.New("invalid quotation id")
	ErrInvalidProjectID         = errors.New("invalid project id")
	ErrProjectNotFound          = errors.New("project not found")
	ErrInvalidActingUser        = errors.New("invalid acting user id")
	ErrInvalidLineItem          = errors.New("invalid line item")
	ErrInvalidQuotationStatus   = errors.New("invalid quotation status")
	ErrQuotationAlreadyApproved = errors.New("quotation already approved")
	ErrQuotationAlreadyRejected = errors.New("quotation already rejected")
	ErrCannotApproveRejected    = errors.New("cannot approve a rejected quotation")
	ErrCannotRejectApproved     = errors.New("cannot reject an approved quotation")
	ErrQuotationLocked          = errors.New("quotation is locked")
	ErrOnlyPendingCanBeApproved = errors.New("only pending quotations can be approved")
	ErrOnlyPendingCanBeRejected = errors.New("only pending quotations can be rejected")
)

// CreateQuotationInput carries admin-supplied quotation data.
//
// TotalAmount is only honored when LineItems is empty; otherwise the total is
// recomputed from the items and the supplied value is discarded.
type CreateQuotationInput struct {
	ProjectID   string
	TotalAmount float64
	LineItems   []entities.LineItem
	Date        *time.Time
	FileName    string
	FileType    string
	FileURL     string
}

// UpdateQuotationInput carries an admin edit. Nil pointers leave the stored
// value untouched. Setting Status back to pending on a rejected quotation is
// the resubmission path; approve/reject never re-enter pending.
type UpdateQuotationInput struct {
	TotalAmount *float64
	Status      *entities.QuotationStatus
	LineItems   []entities.LineItem
	Date        *time.Time
	FileName    *string
	FileType    *string
	FileURL     *string
}

// IQuotationUseCase exposes the quotation lifecycle.
//
// Approve and Reject only move pending quotations; every other starting status
// maps to a dedicated error so callers can tell an already-settled record from
// a missing one.

type IQuotationUseCase interface {
	Create(ctx context.Context, input CreateQuotationInput) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Quotation, error)
	Approve(ctx context.Context, id, actingUserID string) (entities.Quotation, error)
	Reject(ctx context.Context, id, actingUserID string) (entities.Quotation, error)
	Update(ctx context.Context, id string, input UpdateQuotationInput) (entities.Quotation, error)
	Delete(ctx context.Context, id string) error
}

type QuotationUseCase struct {
	repo          interfaces.IQuotationRepository
	projects      interfaces.IProjectRepository
	users         interfaces.IUserRepository
	supervisors   interfaces.ISupervisorRepository
	notifications interfaces.INotificationRepository
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	repo interfaces.IQuotationRepository,
	projects interfaces.IProjectRepository,
	users interfaces.IUserRepository,
	supervisors interfaces.ISupervisorRepository,
	notifications interfaces.INotificationRepository,
) *QuotationUseCase {
	return &QuotationUseCase{
		repo:          repo,
		projects:      projects,
		users:         users,
		supervisors:   supervisors,
		notifications: notifications,
	}
}

// RecomputeTotal sums the line item amounts. Every item needs a non-empty
// description and a positive amount.
func RecomputeTotal(items []entities.LineItem) (float64, error) {
	total := 0.0
	for _, item := range items {
		if strings.TrimSpace(item.Description) == "" || item.Amount <= 0 {
			return 0, ErrInvalidLineItem
		}
		total += item.Amount
	}
	return total, nil
}

func (u *QuotationUseCase) Create(ctx context.Context, input CreateQuotationInput) (entities.Quotation, error) {
	projectID := strings.TrimSpace(input.ProjectID)
	if projectID == "" {
		return entities.Quotation{}, ErrInvalidProjectID
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if project.ID == "" {
		return entities.Quotation{}, ErrProjectNotFound
	}

	total := input.TotalAmount
	if len(input.LineItems) > 0 {
		total, err = RecomputeTotal(input.LineItems)
		if err != nil {
			return entities.Quotation{}, err
		}
	}

	now := time.Now().UTC()
	q := entities.Quotation{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		TotalAmount: total,
		Status:      entities.QuotationStatusPending,
		LineItems:   input.LineItems,
		Date:        input.Date,
		FileName:    input.FileName,
		FileType:    input.FileType,
		FileURL:     input.FileURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.Quotation, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

func (u *QuotationUseCase) Approve(ctx context.Context, id, actingUserID string) (entities.Quotation, error) {
	return u.transition(ctx, id, actingUserID, entities.QuotationStatusApproved)
}

func (u *QuotationUseCase) Reject(ctx context.Context, id, actingUserID string) (entities.Quotation, error) {
	return u.transition(ctx, id, actingUserID, entities.QuotationStatusRejected)
}

func (u *QuotationUseCase) transition(ctx context.Context, id, actingUserID string, target entities.QuotationStatus) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	if strings.TrimSpace(actingUserID) == "" {
		return entities.Quotation{}, ErrInvalidActingUser
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	if err := transitionError(q.Status, target); err != nil {
		return entities.Quotation{}, err
	}

	updated, err := u.repo.UpdateStatusIfCurrent(ctx, id, entities.QuotationStatusPending, target)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		// Lost a race: someone else settled the quotation between our read and
		// the conditional write. Re-read to report the precise state.
		q, err = u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Quotation{}, err
		}
		if q.ID == "" {
			return entities.Quotation{}, ErrQuotationNotFound
		}
		if err := transitionError(q.Status, target); err != nil {
			return entities.Quotation{}, err
		}
		if target == entities.QuotationStatusApproved {
			return entities.Quotation{}, ErrOnlyPendingCanBeApproved
		}
		return entities.Quotation{}, ErrOnlyPendingCanBeRejected
	}

	u.notifyAdmins(ctx, updated, actingUserID, target)
	return updated, nil
}

// transitionError maps the current status to the approve/reject precondition
// ladder; nil means the transition may proceed.
func transitionError(current entities.QuotationStatus, target entities.QuotationStatus) error {
	if current == entities.QuotationStatusPending {
		return nil
	}

	if target == entities.QuotationStatusApproved {
		switch current {
		case entities.QuotationStatusApproved:
			return ErrQuotationAlreadyApproved
		case entities.QuotationStatusRejected:
			return ErrCannotApproveRejected
		case entities.QuotationStatusLocked:
			return ErrQuotationLocked
		default:
			return ErrOnlyPendingCanBeApproved
		}
	}

	switch current {
	case entities.QuotationStatusRejected:
		return ErrQuotationAlreadyRejected
	case entities.QuotationStatusApproved:
		return ErrCannotRejectApproved
	case entities.QuotationStatusLocked:
		return ErrQuotationLocked
	default:
		return ErrOnlyPendingCanBeRejected
	}
}

// notifyAdmins records an in-app notification for every admin. Best effort:
// failures are logged and never surfaced to the transition caller.
func (u *QuotationUseCase) notifyAdmins(ctx context.Context, q entities.Quotation, actingUserID string, target entities.QuotationStatus) {
	actorName := u.resolveActorName(ctx, actingUserID)
	projectName := q.ProjectID
	if project, err := u.projects.GetByID(ctx, q.ProjectID); err != nil {
		log.Printf("[quotation][usecase] notify: project lookup failed quotation_id=%s err=%v", q.ID, err)
	} else if project.ID != "" {
		projectName = project.Name
	}

	verb := "approved"
	if target == entities.QuotationStatusRejected {
		verb = "rejected"
	}

	admins, err := u.users.ListByRole(ctx, entities.RoleAdmin)
	if err != nil {
		log.Printf("[quotation][usecase] notify: admin listing failed quotation_id=%s err=%v", q.ID, err)
		return
	}

	now := time.Now().UTC()
	for _, admin := range admins {
		n := entities.Notification{
			ID:          uuid.NewString(),
			RecipientID: admin.ID,
			Title:       fmt.Sprintf("Quotation %s", verb),
			Message:     fmt.Sprintf("Quotation for project %q was %s by %s", projectName, verb, actorName),
			CreatedAt:   now,
		}
		if _, err := u.notifications.Create(ctx, n); err != nil {
			log.Printf("[quotation][usecase] notify: create failed quotation_id=%s recipient_id=%s err=%v", q.ID, admin.ID, err)
		}
	}
}

// resolveActorName looks for the acting identity in the user store first and
// the supervisor store second; approvals come from either.
func (u *QuotationUseCase) resolveActorName(ctx context.Context, actingUserID string) string {
	if user, err := u.users.GetByID(ctx, actingUserID); err == nil && user.ID != "" {
		return user.Name
	}
	if sup, err := u.supervisors.GetByID(ctx, actingUserID); err == nil && sup.ID != "" {
		return sup.Name
	}
	return actingUserID
}

func (u *QuotationUseCase) Update(ctx context.Context, id string, input UpdateQuotationInput) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}

	if input.Status != nil {
		if !isKnownStatus(*input.Status) {
			return entities.Quotation{}, ErrInvalidQuotationStatus
		}
		q.Status = *input.Status
	}
	if input.TotalAmount != nil {
		q.TotalAmount = *input.TotalAmount
	}
	if len(input.LineItems) > 0 {
		total, err := RecomputeTotal(input.LineItems)
		if err != nil {
			return entities.Quotation{}, err
		}
		q.LineItems = input.LineItems
		q.TotalAmount = total
	}
	if input.Date != nil {
		q.Date = input.Date
	}
	if input.FileName != nil {
		q.FileName = *input.FileName
	}
	if input.FileType != nil {
		q.FileType = *input.FileType
	}
	if input.FileURL != nil {
		q.FileURL = *input.FileURL
	}
	q.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return updated, nil
}

func (u *QuotationUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if q.ID == "" {
		return ErrQuotationNotFound
	}
	return u.repo.Delete(ctx, id)
}

func isKnownStatus(s entities.QuotationStatus) bool {
	switch s {
	case entities.QuotationStatusPending, entities.QuotationStatusApproved,
		entities.QuotationStatusRejected, entities.QuotationStatusLocked:
		return true
	default:
		return false
	}
}

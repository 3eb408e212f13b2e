package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrInvalidPaymentQuotationID  = errors.New("invalid quotation_id")
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrQuotationNotApproved       = errors.New("quotation not approved")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase encapsulates the "create and process payment" behavior.
//
// A payment can only be created against an APPROVED quotation, and the charged
// amount always comes from the stored quotation total, never from the caller.

type IPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, quotationID string, mpPayload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo       interfaces.IPaymentRepository
	quotations interfaces.IQuotationRepository
	gateway    interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, quotations interfaces.IQuotationRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, quotations: quotations, gateway: gateway}
}

func (u *PaymentUseCase) CreateAndApprove(ctx context.Context, quotationID string, mpPayload json.RawMessage) (entities.Payment, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.Payment{}, ErrInvalidPaymentQuotationID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		return entities.Payment{}, ErrInvalidMPPayload
	}
	if u.gateway == nil {
		return entities.Payment{}, errors.New("payment gateway not configured")
	}

	q, err := u.quotations.GetByID(ctx, quotationID)
	if err != nil {
		log.Printf("[payment][usecase] quotation lookup failed quotation_id=%s err=%v", quotationID, err)
		return entities.Payment{}, err
	}
	if q.ID == "" {
		return entities.Payment{}, ErrQuotationNotFound
	}
	if q.Status != entities.QuotationStatusApproved {
		return entities.Payment{}, ErrQuotationNotApproved
	}

	// Mercado Pago uses external_reference to reconcile events; the amount is
	// always the quotation total persisted in the store.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = quotationID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Quotation %s", quotationID)
		}
		reqMap["transaction_amount"] = q.TotalAmount
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed quotation_id=%s err=%v", quotationID, err)
		if isGatewayUnauthorized(err) {
			return entities.Payment{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.Payment{}, ErrPaymentGatewayBadRequest
		}
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] payment gateway success quotation_id=%s provider_payment_id=%s provider_status=%s", quotationID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed quotation_id=%s err=%v", quotationID, err)
	}

	p := entities.Payment{
		ID:           providerPaymentID,
		QuotationID:  quotationID,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	return u.repo.Create(ctx, p)
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByQuotationID(ctx context.Context, quotationID string) ([]entities.Payment, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return nil, ErrInvalidPaymentQuotationID
	}
	return u.repo.ListByQuotationID(ctx, quotationID)
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

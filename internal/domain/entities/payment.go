package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
//
// In the requested scope we only need to create/process and persist an approved
// payment. The type supports a denied status for completeness.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// Payment is a customer payment against an approved quotation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quotation_id-index): quotation_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - MPPayload is an optional parsed representation, useful for querying/debugging.
type Payment struct {
	ID          string        `json:"id"`
	QuotationID string        `json:"quotation_id"`
	Date        time.Time     `json:"date"`
	Status      PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

package response

import (
	"time"

	"construtora_xpto/internal/domain/entities"
)

type PaymentResponse struct {
	ID          string    `json:"id"`
	QuotationID string    `json:"quotation_id"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		QuotationID:  p.QuotationID,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

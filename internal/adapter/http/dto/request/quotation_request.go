package request

import (
	"time"

	"construtora_xpto/internal/domain/entities"
)

type LineItemRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// CreateQuotationRequest is the admin payload for submitting a quotation.
//
// TotalAmount is only honored when line_items is empty; with items present
// the server recomputes the total and ignores the supplied value.
type CreateQuotationRequest struct {
	ProjectID   string            `json:"project_id" binding:"required"`
	TotalAmount float64           `json:"total_amount"`
	LineItems   []LineItemRequest `json:"line_items"`
	Date        *time.Time        `json:"date"`
	FileName    string            `json:"file_name"`
	FileType    string            `json:"file_type"`
	FileURL     string            `json:"file_url"`
}

// UpdateQuotationRequest is a partial admin edit; absent fields keep their
// stored values. Setting status "pending" on a rejected quotation resubmits it.
type UpdateQuotationRequest struct {
	TotalAmount *float64          `json:"total_amount"`
	Status      *string           `json:"status"`
	LineItems   []LineItemRequest `json:"line_items"`
	Date        *time.Time        `json:"date"`
	FileName    *string           `json:"file_name"`
	FileType    *string           `json:"file_type"`
	FileURL     *string           `json:"file_url"`
}

func ToLineItems(items []LineItemRequest) []entities.LineItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.LineItem{Description: it.Description, Amount: it.Amount})
	}
	return out
}

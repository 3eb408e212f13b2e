package response

import (
	"time"

	"construtora_xpto/internal/domain/entities"
)

type LineItemResponse struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type QuotationResponse struct {
	ID          string             `json:"id"`
	ProjectID   string             `json:"project_id"`
	TotalAmount float64            `json:"total_amount"`
	Status      string             `json:"status"`
	LineItems   []LineItemResponse `json:"line_items,omitempty"`
	Date        *time.Time         `json:"date,omitempty"`
	FileName    string             `json:"file_name,omitempty"`
	FileType    string             `json:"file_type,omitempty"`
	FileURL     string             `json:"file_url,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	items := make([]LineItemResponse, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		items = append(items, LineItemResponse{Description: li.Description, Amount: li.Amount})
	}
	if len(items) == 0 {
		items = nil
	}

	return QuotationResponse{
		ID:          q.ID,
		ProjectID:   q.ProjectID,
		TotalAmount: q.TotalAmount,
		Status:      string(q.Status),
		LineItems:   items,
		Date:        q.Date,
		FileName:    q.FileName,
		FileType:    q.FileType,
		FileURL:     q.FileURL,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func FromQuotations(qs []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuotation(q))
	}
	return out
}

package entities

import "time"

// QuotationStatus represents the lifecycle of a quotation.
//
// Domain notes:
//   - New quotations always start pending.
//   - approve/reject only act on pending records; rejected quotations can be
//     resubmitted (set back to pending) by an admin update, approved ones can not.
//   - "locked" is a legacy terminal state kept for historical records; it is
//     never produced by the approve/reject path.

type QuotationStatus string

const (
	QuotationStatusPending  QuotationStatus = "pending"
	QuotationStatusApproved QuotationStatus = "approved"
	QuotationStatusRejected QuotationStatus = "rejected"
	QuotationStatusLocked   QuotationStatus = "locked"
)

// LineItem is one component of a quotation's itemized cost breakdown.
type LineItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Quotation is a priced proposal tied to one project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Monetary representation:
//   - TotalAmount is recomputed from LineItems whenever line items are present;
//     caller-supplied totals are never trusted in that case.
//
// File fields are plain metadata; the upload integration lives outside this service.
type Quotation struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	TotalAmount float64         `json:"total_amount"`
	Status      QuotationStatus `json:"status"`
	LineItems   []LineItem      `json:"line_items"`
	Date        *time.Time      `json:"date,omitempty"`
	FileName    string          `json:"file_name,omitempty"`
	FileType    string          `json:"file_type,omitempty"`
	FileURL     string          `json:"file_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

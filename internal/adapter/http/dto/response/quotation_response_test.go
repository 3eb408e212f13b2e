package response

import (
	"testing"
	"time"

	"construtora_xpto/internal/domain/entities"
)

func TestFromQuotation(t *testing.T) {
	now := time.Now().UTC()
	date := now.Add(-time.Hour)
	q := entities.Quotation{
		ID:          "q-1",
		ProjectID:   "proj-1",
		TotalAmount: 50000,
		Status:      entities.QuotationStatusApproved,
		LineItems: []entities.LineItem{
			{Description: "materials", Amount: 25000},
			{Description: "labor", Amount: 25000},
		},
		Date:      &date,
		FileName:  "quote.pdf",
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromQuotation(q)
	if res.ID != "q-1" || res.ProjectID != "proj-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.TotalAmount != 50000 || res.Status != "approved" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.LineItems) != 2 || res.LineItems[1].Amount != 25000 {
		t.Fatalf("unexpected line items: %+v", res.LineItems)
	}
	if res.Date == nil || !res.Date.Equal(date) {
		t.Fatalf("unexpected date: %+v", res.Date)
	}
	if res.FileName != "quote.pdf" {
		t.Fatalf("unexpected file name: %+v", res)
	}
}

func TestFromQuotation_NoLineItems(t *testing.T) {
	res := FromQuotation(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusPending})
	if res.LineItems != nil {
		t.Fatalf("expected nil line items, got %+v", res.LineItems)
	}
}

func TestFromQuotations(t *testing.T) {
	res := FromQuotations([]entities.Quotation{{ID: "a"}, {ID: "b"}})
	if len(res) != 2 || res[0].ID != "a" || res[1].ID != "b" {
		t.Fatalf("unexpected slice: %+v", res)
	}
}

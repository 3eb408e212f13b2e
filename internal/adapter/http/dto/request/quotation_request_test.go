package request

import "testing"

func TestToLineItems(t *testing.T) {
	items := ToLineItems([]LineItemRequest{
		{Description: "materials", Amount: 25000},
		{Description: "labor", Amount: 25000},
	})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Description != "materials" || items[0].Amount != 25000 {
		t.Fatalf("unexpected item: %+v", items[0])
	}

	if got := ToLineItems(nil); got != nil {
		t.Fatalf("expected nil for empty input, got %+v", got)
	}
	if got := ToLineItems([]LineItemRequest{}); got != nil {
		t.Fatalf("expected nil for empty slice, got %+v", got)
	}
}

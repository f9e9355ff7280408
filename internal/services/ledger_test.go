package services

import (
	"context"
	"testing"

	"dispatch-desk/internal/domain"
)

func TestAppendHistoryPreservesCallOrder(t *testing.T) {
	tabs, _ := newTestTables(t)
	ctx := context.Background()

	first := domain.HistoryEntry{Client: "Ivanov", Operation: domain.OpDebtAdded, Amount: 100}
	second := domain.HistoryEntry{Client: "Petrov", Operation: domain.OpDebtRepayment, Amount: 50}

	if err := AppendHistory(ctx, tabs, first); err != nil {
		t.Fatalf("append first: %v", err)
	}
	if err := AppendHistory(ctx, tabs, second); err != nil {
		t.Fatalf("append second: %v", err)
	}

	history := tabs.Snapshot(domain.TableHistory)
	if history.Len() != 2 {
		t.Fatalf("history rows = %d, want 2", history.Len())
	}
	if e := domain.HistoryFromRow(history, 0); e.Client != "Ivanov" {
		t.Errorf("row 0 client = %q, want the first entry", e.Client)
	}
	if e := domain.HistoryFromRow(history, 1); e.Client != "Petrov" {
		t.Errorf("row 1 client = %q, want the second entry", e.Client)
	}
}

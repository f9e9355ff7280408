package services

import (
	"context"
	"fmt"

	"dispatch-desk/internal/domain"
)

// AppendHistory writes one ledger entry at the end of the history table.
// Insertion order is call order; prior entries are never edited or
// deleted.
func AppendHistory(ctx context.Context, tabs *Tables, e domain.HistoryEntry) error {
	err := tabs.Update(ctx, domain.TableHistory, func(t *domain.Table) error {
		t.AppendRow(e.Row())
		return nil
	})
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// appendHistoryRow is the in-transaction variant used by flows that write
// the ledger together with other tables under one UpdateMany.
func appendHistoryRow(tabs map[domain.TableID]*domain.Table, e domain.HistoryEntry) {
	tabs[domain.TableHistory].AppendRow(e.Row())
}

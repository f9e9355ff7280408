package ports

import (
	"context"

	"dispatch-desk/internal/domain"
)

// Port: a boundary for loading and persisting whole tables.
type TableStore interface {
	// Load returns the persisted table, or an empty table with the
	// entity's declared default schema when the backing file is absent.
	// A missing file is not an error.
	Load(ctx context.Context, id domain.TableID) (*domain.Table, error)

	// Save writes the full table, overwriting the prior file content.
	// This is the only persistence primitive; there is no incremental
	// write.
	Save(ctx context.Context, id domain.TableID, t *domain.Table) error
}

package tablestore

import (
	"context"

	"dispatch-desk/internal/domain"
)

// In-memory implementation of the TableStore port, used by tests and by
// callers that want the working copy without any file backing.
type MemStore struct {
	tables map[domain.TableID]*domain.Table

	// SaveErr, when set, is returned by every Save. Lets tests exercise
	// the write-failure path.
	SaveErr error
}

func NewMemStore() *MemStore {
	return &MemStore{tables: map[domain.TableID]*domain.Table{}}
}

func (s *MemStore) Load(ctx context.Context, id domain.TableID) (*domain.Table, error) {
	if t, ok := s.tables[id]; ok {
		return t.Clone(), nil
	}
	return domain.NewTable(domain.DefaultColumns(id)), nil
}

func (s *MemStore) Save(ctx context.Context, id domain.TableID, t *domain.Table) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.tables[id] = t.Clone()
	return nil
}

// Saved returns the last table saved under id, nil if none.
func (s *MemStore) Saved(id domain.TableID) *domain.Table {
	return s.tables[id]
}

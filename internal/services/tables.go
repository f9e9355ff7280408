package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"dispatch-desk/internal/domain"
	"dispatch-desk/internal/platform/metrics"
	"dispatch-desk/internal/platform/obs"
	"dispatch-desk/internal/ports"
)

// Sentinel errors surfaced to the API layer for status mapping.
var (
	ErrNotFound       = errors.New("no matching row")
	ErrTruckBusy      = errors.New("truck has active orders")
	ErrReduceTooLarge = errors.New("reduction exceeds current balance")
)

// Tables owns the single in-memory working copy of the five tables.
// It loads everything once at startup and serializes every
// load-mutate-save cycle under one mutex, so concurrent writers can
// never clobber each other's rows with a stale full-file overwrite.
//
// On a save failure the mutated in-memory table is kept authoritative:
// the error surfaces to the caller and the next successful save persists
// the accumulated state.
type Tables struct {
	mu    sync.Mutex
	store ports.TableStore
	tabs  map[domain.TableID]*domain.Table
}

// LoadTables reads all five tables from the store. Missing files load as
// empty tables with their default schemas.
func LoadTables(ctx context.Context, store ports.TableStore) (*Tables, error) {
	s := &Tables{store: store, tabs: make(map[domain.TableID]*domain.Table, len(domain.AllTables))}
	for _, id := range domain.AllTables {
		t, err := store.Load(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load tables: %w", err)
		}
		s.tabs[id] = t
	}
	return s, nil
}

// Snapshot returns a deep copy of a table for read-only use.
func (s *Tables) Snapshot(id domain.TableID) *domain.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tabs[id].Clone()
}

// Update applies fn to one table and writes it through. When fn returns
// an error nothing is saved and the table is left as fn left it, so fn
// must not mutate before deciding to fail.
func (s *Tables) Update(ctx context.Context, id domain.TableID, fn func(t *domain.Table) error) error {
	return s.UpdateMany(ctx, []domain.TableID{id}, func(tabs map[domain.TableID]*domain.Table) error {
		return fn(tabs[id])
	})
}

// UpdateMany applies fn to the whole working copy and then persists the
// tables named in save, in order. fn may read any table but should only
// mutate the ones listed. A write failure partway leaves files
// inconsistent with each other; the error names the table that failed
// and every listed table after it is not persisted.
func (s *Tables) UpdateMany(ctx context.Context, save []domain.TableID, fn func(tabs map[domain.TableID]*domain.Table) error) (err error) {
	defer obs.Time(ctx, "update tables")(&err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.tabs); err != nil {
		return err
	}

	for _, id := range save {
		if serr := s.store.Save(ctx, id, s.tabs[id]); serr != nil {
			metrics.TableSaveErrors.WithLabelValues(string(id)).Inc()
			return fmt.Errorf("table %s not persisted: %w", id, serr)
		}
		metrics.TableSaves.WithLabelValues(string(id)).Inc()
	}
	return nil
}

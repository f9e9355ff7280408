package tablestore

import (
	"context"
	"testing"

	"dispatch-desk/internal/domain"
)

func TestCSVStoreLoadMissingFileYieldsDefaultSchema(t *testing.T) {
	store := NewCSVStore(t.TempDir())

	for _, id := range domain.AllTables {
		tab, err := store.Load(context.Background(), id)
		if err != nil {
			t.Fatalf("load %s: unexpected error: %v", id, err)
		}
		if tab.Len() != 0 {
			t.Errorf("load %s: got %d rows, want 0", id, tab.Len())
		}

		want := domain.DefaultColumns(id)
		if len(tab.Columns) != len(want) {
			t.Fatalf("load %s: columns = %v, want %v", id, tab.Columns, want)
		}
		for i := range want {
			if tab.Columns[i] != want[i] {
				t.Fatalf("load %s: columns = %v, want %v", id, tab.Columns, want)
			}
		}
	}
}

func TestCSVStoreSaveLoadRoundTrip(t *testing.T) {
	store := NewCSVStore(t.TempDir())
	ctx := context.Background()

	tab := domain.NewTable(domain.DefaultColumns(domain.TableDebts))
	tab.AppendRow(domain.Debt{Client: "Ivanov", Organization: "Org", Amount: 1000, DocumentNo: "D-1", DueDate: "2026-01-15", IssuedBy: "Op"}.Row())
	tab.AppendRow(domain.Debt{Client: "Petrov", Amount: 250.5}.Row())

	if err := store.Save(ctx, domain.TableDebts, tab); err != nil {
		t.Fatalf("save: unexpected error: %v", err)
	}

	got, err := store.Load(ctx, domain.TableDebts)
	if err != nil {
		t.Fatalf("load: unexpected error: %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("loaded %d rows, want 2", got.Len())
	}

	d := domain.DebtFromRow(got, 0)
	if d.Client != "Ivanov" || d.Amount != 1000 || d.DueDate != "2026-01-15" {
		t.Errorf("row 0 round-tripped as %+v", d)
	}
	if amt := got.Float(1, domain.ColDebtAmount); amt != 250.5 {
		t.Errorf("row 1 amount = %v, want 250.5", amt)
	}
}

func TestCSVStoreSaveOverwrites(t *testing.T) {
	store := NewCSVStore(t.TempDir())
	ctx := context.Background()

	big := domain.NewTable(domain.DefaultColumns(domain.TableZones))
	big.AppendRow(domain.Zone{Name: "North"}.Row())
	big.AppendRow(domain.Zone{Name: "South"}.Row())
	if err := store.Save(ctx, domain.TableZones, big); err != nil {
		t.Fatalf("first save: %v", err)
	}

	small := domain.NewTable(domain.DefaultColumns(domain.TableZones))
	small.AppendRow(domain.Zone{Name: "East"}.Row())
	if err := store.Save(ctx, domain.TableZones, small); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := store.Load(ctx, domain.TableZones)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("after overwrite got %d rows, want 1", got.Len())
	}
	if name, _ := got.Get(0, domain.ColZoneName); name != "East" {
		t.Errorf("surviving row = %q, want East", name)
	}
}

func TestCSVStoreRoundTripPreservesCommasInCells(t *testing.T) {
	store := NewCSVStore(t.TempDir())
	ctx := context.Background()

	tab := domain.NewTable(domain.DefaultColumns(domain.TableTrucks))
	tab.AppendRow(domain.Truck{Driver: "Sidorov", Status: "Free", CompletedOrders: "101, 102, 103"}.Row())
	if err := store.Save(ctx, domain.TableTrucks, tab); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(ctx, domain.TableTrucks)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if list, _ := got.Get(0, domain.ColCompletedOrders); list != "101, 102, 103" {
		t.Errorf("completed list = %q, want comma-joined original", list)
	}
}

package services

import (
	"testing"
	"time"

	"dispatch-desk/internal/domain"
)

func zoneTestTable() *domain.Table {
	t := domain.NewTable(domain.DefaultColumns(domain.TableZones))
	t.AppendRow(domain.Zone{Name: "North", PriceValday: 500}.Row())
	t.AppendRow(domain.Zone{Name: "South", PriceValday: 300}.Row())
	return t
}

func TestSearchMatchesColumnLabels(t *testing.T) {
	tab := zoneTestTable()

	// "valday" appears only in a column label, never in a cell value:
	// both rows must match through the stringified representation.
	got := Search(tab, "valday")
	if got.Len() != 2 {
		t.Fatalf("matches = %d, want 2", got.Len())
	}
}

func TestSearchIsCaseInsensitiveAndOrdered(t *testing.T) {
	tab := zoneTestTable()

	got := Search(tab, "NoRtH")
	if got.Len() != 1 {
		t.Fatalf("matches = %d, want 1", got.Len())
	}

	got = Search(tab, "outh")
	if got.Len() != 1 {
		t.Fatalf("substring matches = %d, want 1", got.Len())
	}
	if name, _ := got.Get(0, domain.ColZoneName); name != "South" {
		t.Errorf("match = %q, want South", name)
	}

	// All rows match the empty query, in original order.
	got = Search(tab, "")
	if got.Len() != 2 {
		t.Fatalf("empty query matches = %d, want 2", got.Len())
	}
	if name, _ := got.Get(0, domain.ColZoneName); name != "North" {
		t.Errorf("first match = %q, want original order preserved", name)
	}
}

func TestSearchNoMatch(t *testing.T) {
	tab := zoneTestTable()
	if got := Search(tab, "no such street"); got.Len() != 0 {
		t.Fatalf("matches = %d, want 0", got.Len())
	}
}

func TestOverdueDebt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tab := domain.NewTable(domain.DefaultColumns(domain.TableDebts))
	tab.AppendRow(domain.Debt{Client: "late", Amount: 100, DueDate: "2026-02-01"}.Row())
	tab.AppendRow(domain.Debt{Client: "future", Amount: 100, DueDate: "2026-04-01"}.Row())
	tab.AppendRow(domain.Debt{Client: "paid", Amount: 0, DueDate: "2026-02-01"}.Row())
	tab.AppendRow(domain.Debt{Client: "undated", Amount: 100}.Row())

	cases := []struct {
		row  int
		want bool
	}{
		{0, true},
		{1, false},
		{2, false},
		{3, false},
	}
	for _, c := range cases {
		if got := OverdueDebt(tab, c.row, now); got != c.want {
			client, _ := tab.Get(c.row, domain.ColClient)
			t.Errorf("OverdueDebt(%s) = %v, want %v", client, got, c.want)
		}
	}
}

func TestStatusColor(t *testing.T) {
	if got := StatusColor(string(domain.TruckFree)); got != "yellow" {
		t.Errorf("Free = %q", got)
	}
	if got := StatusColor(string(domain.TruckInTransit)); got != "orange" {
		t.Errorf("InTransit = %q", got)
	}
	if got := StatusColor(string(domain.TruckBusy)); got != "orange" {
		t.Errorf("Busy = %q", got)
	}
	if got := StatusColor(string(domain.TruckUnderRepair)); got != "green" {
		t.Errorf("UnderRepair = %q", got)
	}
	if got := StatusColor(string(domain.OrderCompleted)); got != "" {
		t.Errorf("Completed = %q, want no highlight", got)
	}
}

package services

import (
	"context"
	"fmt"

	"dispatch-desk/internal/domain"
)

// AddZone appends a pricing zone. Duplicate zone names are allowed; the
// store enforces no uniqueness.
func AddZone(ctx context.Context, tabs *Tables, z domain.Zone) error {
	if z.Name == "" {
		return fmt.Errorf("add zone: zone name must not be empty")
	}
	err := tabs.Update(ctx, domain.TableZones, func(t *domain.Table) error {
		t.AppendRow(z.Row())
		return nil
	})
	if err != nil {
		return fmt.Errorf("add zone: %w", err)
	}
	return nil
}

// UpdateZone replaces every row matching name with the new full row.
// Replace semantics: any field the caller omitted is lost, not preserved.
func UpdateZone(ctx context.Context, tabs *Tables, name string, z domain.Zone) error {
	err := tabs.Update(ctx, domain.TableZones, func(t *domain.Table) error {
		if t.ReplaceMatching(domain.ColZoneName, name, z.Row()) == 0 {
			return fmt.Errorf("zone %q: %w", name, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update zone: %w", err)
	}
	return nil
}

// DeleteZone removes every row matching name exactly.
func DeleteZone(ctx context.Context, tabs *Tables, name string) error {
	err := tabs.Update(ctx, domain.TableZones, func(t *domain.Table) error {
		if t.DeleteMatching(domain.ColZoneName, name) == 0 {
			return fmt.Errorf("zone %q: %w", name, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete zone: %w", err)
	}
	return nil
}

// ZoneSuggestions returns the autocomplete options for the zone lookup:
// distinct street lists followed by distinct zone names.
func ZoneSuggestions(t *domain.Table) []string {
	out := t.UniqueValues(domain.ColZoneStreets)
	return append(out, t.UniqueValues(domain.ColZoneName)...)
}

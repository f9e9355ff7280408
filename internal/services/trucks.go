package services

import (
	"context"
	"fmt"

	"dispatch-desk/internal/domain"
)

type TruckRequest struct {
	Driver        string
	MaxCapacity   float64
	SideUnloading bool
	Status        domain.TruckStatus
}

// AddTruck registers a driver+vehicle unit with an empty completed list.
func AddTruck(ctx context.Context, tabs *Tables, req TruckRequest) error {
	if req.Driver == "" {
		return fmt.Errorf("add truck: driver must not be empty")
	}
	if _, err := domain.ParseTruckStatus(string(req.Status)); err != nil {
		return fmt.Errorf("add truck: %w", err)
	}

	err := tabs.Update(ctx, domain.TableTrucks, func(t *domain.Table) error {
		truck := domain.Truck{
			Driver:        req.Driver,
			MaxCapacity:   req.MaxCapacity,
			SideUnloading: req.SideUnloading,
			Status:        string(req.Status),
		}
		t.AppendRow(truck.Row())
		return nil
	})
	if err != nil {
		return fmt.Errorf("add truck: %w", err)
	}
	return nil
}

// UpdateTruck is a full-row replace keyed by the current driver name,
// except the completed-orders list, which the edit form never carries and
// which survives from each replaced row.
func UpdateTruck(ctx context.Context, tabs *Tables, driver string, req TruckRequest) error {
	if _, err := domain.ParseTruckStatus(string(req.Status)); err != nil {
		return fmt.Errorf("update truck: %w", err)
	}

	err := tabs.Update(ctx, domain.TableTrucks, func(t *domain.Table) error {
		rows := t.FindRows(domain.ColDriver, driver)
		if len(rows) == 0 {
			return fmt.Errorf("truck for driver %q: %w", driver, ErrNotFound)
		}
		for _, row := range rows {
			completed, _ := t.Get(row, domain.ColCompletedOrders)
			truck := domain.Truck{
				Driver:          req.Driver,
				MaxCapacity:     req.MaxCapacity,
				SideUnloading:   req.SideUnloading,
				Status:          string(req.Status),
				CompletedOrders: completed,
			}
			t.Rows[row] = truck.Row()
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update truck: %w", err)
	}
	return nil
}

// DeleteTruck removes every row for the driver.
func DeleteTruck(ctx context.Context, tabs *Tables, driver string) error {
	err := tabs.Update(ctx, domain.TableTrucks, func(t *domain.Table) error {
		if t.DeleteMatching(domain.ColDriver, driver) == 0 {
			return fmt.Errorf("truck for driver %q: %w", driver, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete truck: %w", err)
	}
	return nil
}

// SetTruckStatus changes a truck's status through the dedicated editor.
// The change is rejected with ErrTruckBusy iff the driver has at least
// one order in Pending or InTransit.
func SetTruckStatus(ctx context.Context, tabs *Tables, driver string, status domain.TruckStatus) error {
	if _, err := domain.ParseTruckStatus(string(status)); err != nil {
		return fmt.Errorf("set truck status: %w", err)
	}

	save := []domain.TableID{domain.TableTrucks}
	err := tabs.UpdateMany(ctx, save, func(all map[domain.TableID]*domain.Table) error {
		if driverHasActiveOrders(all[domain.TableOrders], driver) {
			return fmt.Errorf("driver %q: %w", driver, ErrTruckBusy)
		}

		trucks := all[domain.TableTrucks]
		rows := trucks.FindRows(domain.ColDriver, driver)
		if len(rows) == 0 {
			return fmt.Errorf("truck for driver %q: %w", driver, ErrNotFound)
		}
		for _, row := range rows {
			trucks.Set(row, domain.ColStatus, string(status))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("set truck status: %w", err)
	}
	return nil
}

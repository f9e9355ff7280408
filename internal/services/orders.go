package services

import (
	"context"
	"fmt"
	"time"

	"dispatch-desk/internal/domain"
)

type AddOrderRequest struct {
	Number   string
	Status   domain.OrderStatus
	Driver   string
	ClosedBy string
}

// AddOrder appends an order and applies the truck side effects before
// returning, so the new assignment is visible to the very next read.
func AddOrder(ctx context.Context, tabs *Tables, req AddOrderRequest, now time.Time) error {
	if req.Number == "" {
		return fmt.Errorf("add order: order number must not be empty")
	}
	if _, err := domain.ParseOrderStatus(string(req.Status)); err != nil {
		return fmt.Errorf("add order: %w", err)
	}

	save := []domain.TableID{domain.TableOrders, domain.TableTrucks}
	err := tabs.UpdateMany(ctx, save, func(all map[domain.TableID]*domain.Table) error {
		trucks := all[domain.TableTrucks]
		if len(trucks.FindRows(domain.ColDriver, req.Driver)) == 0 {
			return fmt.Errorf("truck for driver %q: %w", req.Driver, ErrNotFound)
		}

		order := domain.Order{
			Number:    req.Number,
			CreatedAt: now.Format(domain.TimestampLayout),
			Status:    req.Status,
			Driver:    req.Driver,
			ClosedBy:  req.ClosedBy,
		}
		all[domain.TableOrders].AppendRow(order.Row())

		applyTruckSideEffects(trucks, req.Driver, req.Status, req.Number)
		return nil
	})
	if err != nil {
		return fmt.Errorf("add order: %w", err)
	}
	return nil
}

// SetOrderStatus overwrites an order's status. Transitioning into
// Completed increments the completed count by exactly one; the previous
// stored status guards the increment, so setting Completed twice in a
// row counts once. Every change also propagates to the matching truck.
func SetOrderStatus(ctx context.Context, tabs *Tables, orderNo string, status domain.OrderStatus) error {
	if _, err := domain.ParseOrderStatus(string(status)); err != nil {
		return fmt.Errorf("set order status: %w", err)
	}

	save := []domain.TableID{domain.TableOrders, domain.TableTrucks}
	err := tabs.UpdateMany(ctx, save, func(all map[domain.TableID]*domain.Table) error {
		orders := all[domain.TableOrders]
		rows := orders.FindRows(domain.ColOrderNo, orderNo)
		if len(rows) == 0 {
			return fmt.Errorf("order %q: %w", orderNo, ErrNotFound)
		}

		row := rows[0]
		prev, _ := orders.Get(row, domain.ColStatus)
		orders.Set(row, domain.ColStatus, string(status))

		if status == domain.OrderCompleted && prev != string(domain.OrderCompleted) {
			count := orders.Int(row, domain.ColCompletedCount)
			orders.Set(row, domain.ColCompletedCount, fmt.Sprintf("%d", count+1))
		}

		driver, _ := orders.Get(row, domain.ColDriver)
		applyTruckSideEffects(all[domain.TableTrucks], driver, status, orderNo)
		return nil
	})
	if err != nil {
		return fmt.Errorf("set order status: %w", err)
	}
	return nil
}

// DeleteOrder removes every row matching the order number exactly.
func DeleteOrder(ctx context.Context, tabs *Tables, number string) error {
	err := tabs.Update(ctx, domain.TableOrders, func(t *domain.Table) error {
		if t.DeleteMatching(domain.ColOrderNo, number) == 0 {
			return fmt.Errorf("order %q: %w", number, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// applyTruckSideEffects is the coupling every order status change carries:
// the truck's status column takes the order-status value verbatim, even
// though the two columns use different vocabularies, and the order number
// is appended to the truck's comma-joined completed list whether or not
// the order actually completed.
func applyTruckSideEffects(trucks *domain.Table, driver string, status domain.OrderStatus, orderNo string) {
	for _, row := range trucks.FindRows(domain.ColDriver, driver) {
		trucks.Set(row, domain.ColStatus, string(status))
		list, _ := trucks.Get(row, domain.ColCompletedOrders)
		trucks.Set(row, domain.ColCompletedOrders, domain.AppendOrderNumber(list, orderNo))
	}
}

// driverHasActiveOrders reports whether any order for driver is Pending
// or InTransit.
func driverHasActiveOrders(orders *domain.Table, driver string) bool {
	for _, row := range orders.FindRows(domain.ColDriver, driver) {
		status, _ := orders.Get(row, domain.ColStatus)
		if domain.OrderStatus(status).Active() {
			return true
		}
	}
	return false
}

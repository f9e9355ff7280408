package domain

import (
	"fmt"
	"strconv"
)

// Column labels of the orders table.
const (
	ColOrderNo        = "Order No"
	ColCreatedAt      = "Created At"
	ColClosedBy       = "Closed By"
	ColCompletedCount = "Completed Count"
)

// TimestampLayout is the on-file format for order creation times.
const TimestampLayout = "2006-01-02 15:04:05"

// OrderStatus is the lifecycle state of an order. There is no enforced
// transition graph: the UI may set any status from any status.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderInTransit OrderStatus = "InTransit"
	OrderCompleted OrderStatus = "Completed"
	OrderCancelled OrderStatus = "Cancelled"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderPending, OrderInTransit, OrderCompleted, OrderCancelled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("parse order status: unknown status %q", s)
}

// Active reports whether the status blocks a truck status edit.
func (s OrderStatus) Active() bool {
	return s == OrderPending || s == OrderInTransit
}

// A delivery order assigned to a driver by name. Order numbers are natural
// keys, not enforced unique.
type Order struct {
	Number         string
	CreatedAt      string
	Status         OrderStatus
	Driver         string
	ClosedBy       string
	CompletedCount int
}

func (o Order) Row() []string {
	return []string{
		o.Number,
		o.CreatedAt,
		string(o.Status),
		o.Driver,
		o.ClosedBy,
		strconv.Itoa(o.CompletedCount),
	}
}

func OrderFromRow(t *Table, row int) Order {
	number, _ := t.Get(row, ColOrderNo)
	created, _ := t.Get(row, ColCreatedAt)
	status, _ := t.Get(row, ColStatus)
	driver, _ := t.Get(row, ColDriver)
	closedBy, _ := t.Get(row, ColClosedBy)
	return Order{
		Number:         number,
		CreatedAt:      created,
		Status:         OrderStatus(status),
		Driver:         driver,
		ClosedBy:       closedBy,
		CompletedCount: t.Int(row, ColCompletedCount),
	}
}

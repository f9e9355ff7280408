package domain

import "fmt"

// Column labels shared by the orders and trucks tables.
const (
	ColDriver = "Driver"
	ColStatus = "Status"
)

// Column labels of the trucks table.
const (
	ColMaxCapacity     = "Max Capacity (t)"
	ColSideUnloading   = "Side Unloading"
	ColCompletedOrders = "Completed Orders"
)

// TruckStatus is the operational state of a driver+vehicle unit. Note the
// vocabulary differs from OrderStatus: order status changes overwrite a
// truck's status with the order value, so the column can legitimately hold
// either vocabulary. Mixed values are kept as-is when read back.
type TruckStatus string

const (
	TruckFree        TruckStatus = "Free"
	TruckInTransit   TruckStatus = "InTransit"
	TruckUnderRepair TruckStatus = "UnderRepair"
	TruckBusy        TruckStatus = "Busy"
)

func ParseTruckStatus(s string) (TruckStatus, error) {
	switch TruckStatus(s) {
	case TruckFree, TruckInTransit, TruckUnderRepair, TruckBusy:
		return TruckStatus(s), nil
	}
	return "", fmt.Errorf("parse truck status: unknown status %q", s)
}

// A driver+vehicle unit. The driver name is the natural key orders
// reference by value; no foreign key is enforced.
type Truck struct {
	Driver          string
	MaxCapacity     float64
	SideUnloading   bool
	Status          string
	CompletedOrders string
}

func (t Truck) Row() []string {
	return []string{
		t.Driver,
		FormatNumber(t.MaxCapacity),
		FormatYesNo(t.SideUnloading),
		t.Status,
		t.CompletedOrders,
	}
}

func TruckFromRow(t *Table, row int) Truck {
	driver, _ := t.Get(row, ColDriver)
	side, _ := t.Get(row, ColSideUnloading)
	status, _ := t.Get(row, ColStatus)
	completed, _ := t.Get(row, ColCompletedOrders)
	return Truck{
		Driver:          driver,
		MaxCapacity:     t.Float(row, ColMaxCapacity),
		SideUnloading:   side == "yes",
		Status:          status,
		CompletedOrders: completed,
	}
}

// FormatYesNo renders the side-unloading flag the way the file stores it.
func FormatYesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// AppendOrderNumber appends an order number to a comma-joined list.
func AppendOrderNumber(list, number string) string {
	if list == "" {
		return number
	}
	return list + ", " + number
}

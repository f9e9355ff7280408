package dto

type TruckRequest struct {
	Driver        string  `json:"driver"`
	MaxCapacity   float64 `json:"max_capacity_t"`
	SideUnloading bool    `json:"side_unloading"`
	Status        string  `json:"status"`
}

// UpdateTruckRequest replaces the full row matched by Driver, except the
// completed-orders list, which is carried over.
type UpdateTruckRequest struct {
	Driver string       `json:"driver"`
	Truck  TruckRequest `json:"truck"`
}

type TruckStatusRequest struct {
	Driver string `json:"driver"`
	Status string `json:"status"`
}

type TruckResponse struct {
	Driver          string  `json:"driver"`
	MaxCapacity     float64 `json:"max_capacity_t"`
	SideUnloading   bool    `json:"side_unloading"`
	Status          string  `json:"status"`
	StatusColor     string  `json:"status_color,omitempty"`
	CompletedOrders string  `json:"completed_orders"`
}

type ListTrucksResponse struct {
	Trucks []TruckResponse `json:"trucks"`
}

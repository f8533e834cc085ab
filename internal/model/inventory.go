package model

// Inventory tracks the stocked quantity of a car at a location. CarID
// references cars.id; while at least one inventory record points at a
// car, that car cannot be hard-deleted.
type Inventory struct {
	ID       uint64 `json:"id"`       // inventory.id
	CarID    uint64 `json:"carID"`    // inventory.car_id (references cars.id)
	Quantity int    `json:"quantity"` // inventory.quantity
	Location string `json:"location"` // inventory.location
}

package model

// Car represents a vehicle record as stored in the `cars` table. The
// combination of Make, Model and Year forms the natural key of a car:
// no two stored cars may share all three values at once. Photos are
// persisted as a JSON array in a single column. The json tags are used
// directly by the HTTP layer when returning records to callers.
//
// Fields:
//  ID          – primary key identifier of the car.
//  Make        – manufacturer name (e.g. "Toyota").
//  Model       – model name (e.g. "Camry").
//  Year        – model year.
//  Price       – asking price in whole currency units.
//  Description – free-form description text.
//  Photos      – list of photo URLs (may be empty, never nil in responses).
//  Active      – soft flag; inactive cars stay stored but are hidden by convention.
type Car struct {
	ID          uint64   `json:"id"`          // cars.id
	Make        string   `json:"make"`        // cars.make
	Model       string   `json:"model"`       // cars.model
	Year        int      `json:"year"`        // cars.year
	Price       int64    `json:"price"`       // cars.price
	Description string   `json:"description"` // cars.description
	Photos      []string `json:"photos"`      // cars.photos (JSON column)
	Active      bool     `json:"active"`      // cars.active
}

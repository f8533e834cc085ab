package model

// Image is a stored photo link associated with a car.
type Image struct {
	ID      uint64 `json:"id"`      // images.id
	LinkURL string `json:"linkURL"` // images.link_url
	CarID   uint64 `json:"carID"`   // images.car_id (references cars.id)
}

package model

// Client represents a dealership customer as stored in the `clients`
// table. Name is the natural key: client names must be unique across
// the whole collection. SalesPerson references users.id and must point
// at an existing user; a client holding such a reference blocks that
// user's deletion.
//
// Fields:
//  ID          – primary key identifier of the client.
//  Name        – unique client name.
//  Email       – contact email address.
//  ContactInfo – free-form phone / contact details.
//  Address     – postal address.
//  SalesPerson – users.id of the assigned sales person.
//  PhotoURL    – URL of the client's photo.
//  Active      – soft flag; inactive clients stay stored.
type Client struct {
	ID          uint64 `json:"id"`          // clients.id
	Name        string `json:"name"`        // clients.name
	Email       string `json:"email"`       // clients.email
	ContactInfo string `json:"contactInfo"` // clients.contact_info
	Address     string `json:"address"`     // clients.address
	SalesPerson uint64 `json:"salesPerson"` // clients.sales_person (references users.id)
	PhotoURL    string `json:"photoURL"`    // clients.photo_url
	Active      bool   `json:"active"`      // clients.active
}

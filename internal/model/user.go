package model

// User represents a sales-staff account as stored in the `users`
// table. Username is the natural key and must be unique. Roles are
// persisted as a JSON array in a single column. PasswordHash holds the
// bcrypt digest produced at the transport edge; the plaintext never
// reaches the repository layer and the hash is never serialized back
// to callers.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name.
//  Email        – contact email address.
//  PasswordHash – bcrypt hashed password.
//  Roles        – role names assigned to the account (e.g. "Sales", "Admin").
//  PhotoURL     – URL of the user's photo.
//  Active       – soft flag; inactive users stay stored.
type User struct {
	ID           uint64   `json:"id"`       // users.id
	Username     string   `json:"username"` // users.username
	Email        string   `json:"email"`    // users.email
	PasswordHash string   `json:"-"`        // users.password_hash (never exposed)
	Roles        []string `json:"roles"`    // users.roles (JSON column)
	PhotoURL     string   `json:"photoURL"` // users.photo_url
	Active       bool     `json:"active"`   // users.active
}

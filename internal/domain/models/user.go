package models

// User identifiers are caller-supplied for compatibility with the legacy
// client; the store's primary key keeps them unique.
type User struct {
	UserID      int64  `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

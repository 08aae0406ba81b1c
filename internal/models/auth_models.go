package models

import "time"

// User roles understood by the platform.
const (
	RoleManager  = "manager"
	RoleCustomer = "customer"
)

// User represents a platform account, either a store manager or a customer.
// The password is a plaintext placeholder carried over from the source
// system; it is stripped from every API response.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	Password  string    `json:"password,omitempty"`
	FirstName string    `json:"firstName" binding:"required"`
	LastName  string    `json:"lastName" binding:"required"`
	Role      string    `json:"role" binding:"required,oneof=manager customer"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Sanitized returns a copy of the user safe to put on the wire.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

package entity

import "time"

// Customer represents a registered account. Accounts are created on
// registration, mutated on login (last-login stamp) and by admin status
// changes, and never hard-deleted.
type Customer struct {
	ID           int64      // Auto-incremented account identifier.
	Name         string     // Display name.
	Email        string     // Unique login identifier.
	PasswordHash string     // bcrypt hash; never exposed through the API.
	Phone        string     // Optional contact phone.
	Address      string     // Optional shipping address.
	Role         Role       // customer or admin.
	IsActive     bool       // Soft-delete / suspension flag.
	CreatedAt    time.Time  // Registration timestamp.
	LastLogin    *time.Time // Stamped on each successful login; nil before the first.
}

// IsAdmin reports whether the account carries the admin role.
func (c *Customer) IsAdmin() bool {
	return c.Role == RoleAdmin
}

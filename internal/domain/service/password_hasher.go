// Package service defines domain service interfaces implemented by infra.
package service

// PasswordHasher abstracts password hashing so usecases never see the
// underlying algorithm.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)
	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool
}

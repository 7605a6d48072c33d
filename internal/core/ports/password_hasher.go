package ports

// PasswordHasher turns plaintext passwords into one-way salted hashes.
// Implementations must never log or persist the plaintext.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. It must take the
	// same amount of work whether the hash matches or not.
	Verify(plaintext, hash string) bool
}

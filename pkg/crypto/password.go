package crypto

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt work factor used when the caller passes zero.
const DefaultCost = 10

// HashPassword hashes plaintext using bcrypt with the given work factor.
// The cost is encoded inside the resulting hash, so records written with an
// older factor keep verifying after the configured cost changes.
func HashPassword(plain string, cost int) ([]byte, error) {
	if cost <= 0 {
		cost = DefaultCost
	}
	return bcrypt.GenerateFromPassword([]byte(plain), cost)
}

// ComparePassword compares plaintext to a hashed secret.
// A mismatch returns bcrypt.ErrMismatchedHashAndPassword.
func ComparePassword(hash []byte, plain string) error {
	return bcrypt.CompareHashAndPassword(hash, []byte(plain))
}

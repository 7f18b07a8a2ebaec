// Package password wraps the adaptive hash used for stored credentials.
// bcrypt embeds its cost and a fresh random salt in every record, so two
// hashes of the same input never match byte-for-byte.
package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a self-contained bcrypt record from a plaintext password.
// Empty input must be rejected by request validation before reaching here.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches the stored record. Malformed records
// compare false rather than erroring; the comparison is constant time.
func Verify(plain, record string) bool {
	return bcrypt.CompareHashAndPassword([]byte(record), []byte(plain)) == nil
}

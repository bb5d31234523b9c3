package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes the plaintext with bcrypt at the given cost. The cost
// comes from configuration; tests run at the bcrypt minimum.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash. A
// malformed hash reads as a mismatch, never an error.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor used for every stored credential.
const bcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt. The salt is embedded
// in the output, so hashing the same password twice yields different strings.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash reports whether password matches the stored hash.
// A malformed hash counts as a mismatch, never an error.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

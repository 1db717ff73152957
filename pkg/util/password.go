package util

import (
	"golang.org/x/crypto/bcrypt"
)

// Cost used when minting the admin credential hash. The admin logs in a
// handful of times a day, so the slower factor costs nothing in practice.
const bcryptCost = 12

// HashPassword derives a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

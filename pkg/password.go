package utils

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash compares password against a stored credential. Records
// written before hashing was introduced hold the plaintext password and are
// compared in constant time.
func CheckPasswordHash(password, stored string) bool {
	if stored == "" {
		return false
	}
	if IsPasswordHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return SecureCompare(password, stored)
}

func IsPasswordHash(stored string) bool {
	_, err := bcrypt.Cost([]byte(stored))
	return err == nil
}

func SecureCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

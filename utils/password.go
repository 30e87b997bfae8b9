package utils

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidPassword enforces the registration policy: at least 8 characters
// and not entirely numeric.
func ValidPassword(password string) bool {
	if utf8.RuneCountInString(password) < 8 {
		return false
	}
	for _, r := range password {
		if !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

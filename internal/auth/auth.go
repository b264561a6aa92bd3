package auth

import "golang.org/x/crypto/bcrypt"

// The identity store treats passwords as opaque strings; callers hash with
// these helpers before storing and verify on login.

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

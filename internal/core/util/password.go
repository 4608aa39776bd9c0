package util

import "golang.org/x/crypto/bcrypt"

// GenerateEncrypt hashes a plaintext password with bcrypt at the default
// cost. The plaintext is never stored.
func GenerateEncrypt(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashed), err
}

// ComparePassword reports whether plaintext matches the stored hash; a
// non-nil error means it does not.
func ComparePassword(password, encrypted string) error {
	return bcrypt.CompareHashAndPassword([]byte(encrypted), []byte(password))
}

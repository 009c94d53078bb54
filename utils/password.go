package utils

import "golang.org/x/crypto/bcrypt"

// DummyHash is a throwaway bcrypt hash. Login compares against it when no
// account matches the given email, so the request burns the same hashing cost
// whether or not the account exists.
var DummyHash = mustDummyHash()

func mustDummyHash() string {
	h, err := bcrypt.GenerateFromPassword([]byte("no-such-account"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}

// HashPassword hashes a plaintext password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether the plaintext matches the stored bcrypt hash.
// A malformed stored hash counts as a mismatch, never an error.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

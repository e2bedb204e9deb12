package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the cost the catalog has always used; raising it only
// affects newly stored hashes.
const bcryptCost = 10

// HashPassword returns the bcrypt hash of the given plaintext. The salt is
// generated per call and stored inside the hash string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
// A mismatch is a normal false, not an error; bcrypt compares in constant
// time internally.
func CheckPassword(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

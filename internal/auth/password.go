package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is used when configuration supplies no explicit cost.
const DefaultBcryptCost = 12

// HashPassword hashes a plaintext password with the given bcrypt cost.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain matches the stored hash. A
// malformed hash verifies as false rather than surfacing an error, so
// corrupted records fail authentication instead of leaking faults.
func VerifyPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

package security

import "golang.org/x/crypto/bcrypt"

// bcrypt's default work factor is enough here; raising it is a config change,
// not an API change.
const hashCost = bcrypt.DefaultCost

// HashPassword hashes a plaintext credential for storage.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)

	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword returns nil when plain matches the stored hash.
func CheckPassword(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

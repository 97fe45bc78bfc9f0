package utils

import "github.com/google/uuid"

// IsUUID reports whether s is a canonical UUID string.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}

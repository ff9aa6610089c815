package id

import (
	"crypto/rand"
	"encoding/hex"
)

const id32Len = 32

// NewID32 returns 32 lowercase hex characters. It is used as the echo request
// id and is accepted as an Ax-Request-Id by the idempotency middleware.
func NewID32() string {
	var b [id32Len / 2]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// IsID32 reports whether s has the NewID32 shape.
func IsID32(s string) bool {
	if len(s) != id32Len {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

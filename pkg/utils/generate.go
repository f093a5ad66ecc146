package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== VERIFICATION CODE ====================

// GenerateVerificationCode returns a 6-digit code drawn uniformly from
// [100000, 999999].
func GenerateVerificationCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// treat that as unrecoverable rather than degrade to guessable codes.
		panic(fmt.Sprintf("read random source: %v", err))
	}

	return fmt.Sprintf("%06d", n.Int64()+100000)
}

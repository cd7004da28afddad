package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	redemptionAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	redemptionLength   = 12
)

// GenerateRedemptionCode returns a 12-character code drawn uniformly from
// [A-Z0-9]. Codes are not checked for global uniqueness; they are per-claim
// artifacts handed to the partner, not lookup keys.
func GenerateRedemptionCode() (string, error) {
	code := make([]byte, redemptionLength)
	max := big.NewInt(int64(len(redemptionAlphabet)))

	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate redemption code: %w", err)
		}
		code[i] = redemptionAlphabet[n.Int64()]
	}

	return string(code), nil
}

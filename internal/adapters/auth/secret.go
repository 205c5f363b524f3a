package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"galaticketing/internal/domain"
)

// secretAlphabet omits 0/O and 1/I so secrets read back unambiguously over the phone or on paper.
const secretAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type randomSecretGenerator struct {
	alphabet string
}

// NewSecretGenerator returns a SecretGenerator drawing uniformly from an unambiguous uppercase alphabet.
func NewSecretGenerator() domain.SecretGenerator {
	return &randomSecretGenerator{alphabet: secretAlphabet}
}

func (g *randomSecretGenerator) Generate(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid secret length %d", length)
	}
	max := big.NewInt(int64(len(g.alphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate secret: %w", err)
		}
		b[i] = g.alphabet[n.Int64()]
	}
	return string(b), nil
}

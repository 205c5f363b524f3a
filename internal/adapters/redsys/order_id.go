package redsys

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"galaticketing/internal/domain"
)

// orderIDLength is the gateway maximum; the first four characters must be digits.
const orderIDLength = 12

type orderIDGenerator struct {
	now func() time.Time
}

// NewOrderIDGenerator returns 12-digit order ids: four digits from the clock followed by eight random digits.
func NewOrderIDGenerator() domain.OrderIDGenerator {
	return &orderIDGenerator{now: time.Now}
}

func (g *orderIDGenerator) NewOrderID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100_000_000))
	if err != nil {
		return "", fmt.Errorf("failed to generate order id: %w", err)
	}
	prefix := g.now().Unix() % 10_000
	return fmt.Sprintf("%04d%08d", prefix, n.Int64()), nil
}

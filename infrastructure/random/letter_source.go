package random

import (
	"context"
	"crypto/rand"
	"fmt"
)

const alphabetSize = 26

// CryptoLetterSource draws uniformly distributed letters from the OS
// entropy pool. Rejection sampling avoids the modulo bias a plain
// byte%26 would introduce.
type CryptoLetterSource struct{}

// NewCryptoLetterSource creates a crypto-backed letter source
func NewCryptoLetterSource() *CryptoLetterSource {
	return &CryptoLetterSource{}
}

// Draw returns a single uppercase letter A-Z
func (s *CryptoLetterSource) Draw(ctx context.Context) (byte, error) {
	// Largest multiple of 26 below 256; bytes at or above it are rejected
	const limit = byte(256 - 256%alphabetSize)

	buf := make([]byte, 1)
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if _, err := rand.Read(buf); err != nil {
			return 0, fmt.Errorf("failed to read entropy: %w", err)
		}
		if buf[0] < limit {
			return 'A' + buf[0]%alphabetSize, nil
		}
	}
}

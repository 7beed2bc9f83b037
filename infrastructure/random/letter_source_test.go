package random_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordhoard-backend/infrastructure/random"
)

func TestCryptoLetterSource_DrawsUppercaseLetters(t *testing.T) {
	source := random.NewCryptoLetterSource()
	ctx := context.Background()

	seen := make(map[byte]int)
	for i := 0; i < 2000; i++ {
		letter, err := source.Draw(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, letter, byte('A'))
		require.LessOrEqual(t, letter, byte('Z'))
		seen[letter]++
	}

	// 2000 draws over 26 classes should hit most of the alphabet
	assert.Greater(t, len(seen), 20)
}

func TestCryptoLetterSource_CancelledContext(t *testing.T) {
	source := random.NewCryptoLetterSource()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Draw(ctx)
	assert.Error(t, err)
}

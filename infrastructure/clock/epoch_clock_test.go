package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWallEpochClock_RejectsNonPositiveDuration(t *testing.T) {
	_, err := NewWallEpochClock(0)
	assert.Error(t, err)

	_, err = NewWallEpochClock(-time.Second)
	assert.Error(t, err)
}

func TestWallEpochClock_DerivesEpochFromWallTime(t *testing.T) {
	c, err := NewWallEpochClock(10 * time.Second)
	require.NoError(t, err)

	at := time.Unix(1000, 0)
	c.now = func() time.Time { return at }

	epoch, err := c.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(100), epoch)

	// Within the same window the epoch holds
	at = time.Unix(1009, 0)
	epoch, err = c.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(100), epoch)

	// The next window ticks the epoch
	at = time.Unix(1010, 0)
	epoch, err = c.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(101), epoch)
}

func TestWallEpochClock_NeverMovesBackward(t *testing.T) {
	c, err := NewWallEpochClock(10 * time.Second)
	require.NoError(t, err)

	at := time.Unix(1000, 0)
	c.now = func() time.Time { return at }

	epoch, err := c.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(100), epoch)

	// Growing the duration would compute a smaller epoch; the clamp
	// holds the last reported value instead.
	require.NoError(t, c.SetDuration(100*time.Second))
	epoch, err = c.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(100), epoch)

	// A wall clock step backward is clamped the same way
	at = time.Unix(500, 0)
	epoch, err = c.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(100), epoch)
}

func TestWallEpochClock_SubSecondDuration(t *testing.T) {
	c, err := NewWallEpochClock(500 * time.Millisecond)
	require.NoError(t, err)

	at := time.Unix(1, 0)
	c.now = func() time.Time { return at }

	epoch, err := c.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), epoch)

	at = time.Unix(1, int64(500*time.Millisecond))
	epoch, err = c.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), epoch)

	// Shrinking below a second at runtime stays well-defined too
	require.NoError(t, c.SetDuration(250*time.Millisecond))
	epoch, err = c.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(6), epoch)
}

func TestWallEpochClock_SetDurationValidates(t *testing.T) {
	c, err := NewWallEpochClock(time.Minute)
	require.NoError(t, err)

	assert.Error(t, c.SetDuration(0))
	assert.NoError(t, c.SetDuration(time.Hour))
}

func TestWallEpochClock_CancelledContext(t *testing.T) {
	c, err := NewWallEpochClock(time.Minute)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Current(ctx)
	assert.Error(t, err)
}

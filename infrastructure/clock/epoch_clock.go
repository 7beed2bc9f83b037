package clock

import (
	"context"
	"sync"
	"time"

	apperrors "wordhoard-backend/pkg/errors"
)

// WallEpochClock derives the claim epoch from wall time: epoch N covers
// [N*duration, (N+1)*duration) since the Unix epoch. Wall time moving
// forward makes the reported epoch non-decreasing, which is all the
// duplicate claim guard relies on.
type WallEpochClock struct {
	mu        sync.Mutex
	duration  time.Duration
	lastEpoch uint64
	now       func() time.Time
}

// NewWallEpochClock creates an epoch clock with the given epoch duration
func NewWallEpochClock(duration time.Duration) (*WallEpochClock, error) {
	if duration <= 0 {
		return nil, apperrors.NewValidation("epoch duration must be positive")
	}
	return &WallEpochClock{duration: duration, now: time.Now}, nil
}

// Current returns the current epoch number
func (c *WallEpochClock) Current(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Nanosecond arithmetic keeps sub-second durations well-defined
	epoch := uint64(c.now().UnixNano()) / uint64(c.duration)
	// Clamp against regressions from duration changes or clock steps
	if epoch < c.lastEpoch {
		epoch = c.lastEpoch
	}
	c.lastEpoch = epoch
	return epoch, nil
}

// SetDuration changes the epoch duration at runtime. The clamp in
// Current keeps the reported epoch from moving backward afterwards.
func (c *WallEpochClock) SetDuration(duration time.Duration) error {
	if duration <= 0 {
		return apperrors.NewValidation("epoch duration must be positive")
	}
	c.mu.Lock()
	c.duration = duration
	c.mu.Unlock()
	return nil
}

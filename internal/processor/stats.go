package processor

import (
	"context"
	"time"
)

// rate returns completed records per second, or 0 when nothing has
// succeeded yet or no time has passed.
func rate(succeeded int, elapsed time.Duration) float64 {
	if succeeded <= 0 || elapsed <= 0 {
		return 0
	}
	return float64(succeeded) / elapsed.Seconds()
}

// eta estimates the time remaining for the unprocessed records at the
// given rate. The second return is false when the rate is zero, because
// no finite estimate exists.
func eta(total, processed int, perSecond float64) (time.Duration, bool) {
	if perSecond <= 0 {
		return 0, false
	}
	remaining := total - processed
	if remaining <= 0 {
		return 0, true
	}
	return time.Duration(float64(remaining) / perSecond * float64(time.Second)), true
}

// sleepCtx sleeps for d unless ctx is cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package out

import (
	"context"
	"time"

	deployout "mpt/internal/modules/deploy/port/out"
)

type SystemSleeper struct{}

func NewSystemSleeper() deployout.Sleeper {
	return &SystemSleeper{}
}

func (*SystemSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

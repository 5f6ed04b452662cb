package scheduler

import (
	"context"
	"time"

	"careerguide-engine/internal/logger"
)

type Task func(ctx context.Context) error

// Every runs task once immediately and then after each interval until ctx
// is done. interval is re-read on every tick so a config reload takes
// effect without a restart; while it is non-positive the task is skipped
// and the interval is checked again a minute later.
func Every(ctx context.Context, log *logger.Logger, interval func() time.Duration, name string, task Task) {
	run := func() {
		start := time.Now()
		if err := task(ctx); err != nil {
			log.Warn("scheduled task failed", "task", name, "error", err)
			return
		}
		log.Debug("scheduled task done", "task", name, "took", time.Since(start))
	}

	if interval() > 0 {
		run()
	}
	for {
		d := interval()
		if d <= 0 {
			d = time.Minute
		}
		t := time.NewTimer(d)
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
			if interval() > 0 {
				run()
			}
		}
	}
}

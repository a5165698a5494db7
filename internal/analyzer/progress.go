package analyzer

import (
	"context"
	"sync"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// ProgressFunc receives live scan progress: bytes processed so far, the
// estimated total, and the path currently being sized.
type ProgressFunc func(done, total int64, current string)

// tracker holds the live progress counters for one scan. The scan loop
// writes and the reporter goroutine reads concurrently, so every access
// goes through the mutex.
type tracker struct {
	mu      sync.Mutex
	done    int64
	total   int64
	current string
}

func newTracker(total int64) *tracker {
	return &tracker{total: total}
}

// advance adds n processed bytes and records the path being scanned.
func (t *tracker) advance(n int64, path string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.done += n
	t.current = path
}

// snapshot returns a consistent view of the counters.
func (t *tracker) snapshot() (done, total int64, current string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.done, t.total, t.current
}

// startProgressReporter invokes hook on each tick until ctx is done.
func startProgressReporter(ctx context.Context, t *tracker, hook ProgressFunc, interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(t.snapshot())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Package reaper removes generated files once their download window has
// passed.
package reaper

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"time"
)

// Reaper schedules one-shot, best-effort file deletions. Scheduled
// deletions cannot be cancelled and do not survive a process restart; the
// Sweeper covers files left behind that way.
type Reaper struct {
	clock Clock
	log   *slog.Logger

	mu      sync.Mutex
	pending int
}

func New(clock Clock, logger *slog.Logger) *Reaper {
	if clock == nil {
		clock = RealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reaper{clock: clock, log: logger}
}

// Schedule deletes path once delay has elapsed. It never blocks the caller.
func (r *Reaper) Schedule(path string, delay time.Duration) {
	r.mu.Lock()
	r.pending++
	r.mu.Unlock()

	r.clock.AfterFunc(delay, func() {
		defer func() {
			r.mu.Lock()
			r.pending--
			r.mu.Unlock()
		}()
		r.remove(path)
	})
}

// Pending reports deletions that have been scheduled but not yet fired.
func (r *Reaper) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

func (r *Reaper) remove(path string) {
	err := os.Remove(path)
	switch {
	case err == nil:
		r.log.Info("deleted expired file", "path", path)
	case errors.Is(err, fs.ErrNotExist):
		r.log.Debug("expired file already gone", "path", path)
	default:
		r.log.Error("failed to delete file", "path", path, "error", err)
	}
}

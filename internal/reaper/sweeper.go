package reaper

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper periodically clears files in the output directory that outlived
// their TTL, e.g. because the process restarted before a timer fired.
type Sweeper struct {
	cron   *cron.Cron
	dir    string
	maxAge time.Duration
	spec   string
	now    func() time.Time
	log    *slog.Logger
}

func NewSweeper(dir string, maxAge, interval time.Duration, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{
		cron:   cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
		dir:    dir,
		maxAge: maxAge,
		spec:   fmt.Sprintf("@every %s", interval),
		now:    time.Now,
		log:    logger,
	}
}

// Start registers the sweep job and runs one sweep immediately.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.Sweep() }); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	s.cron.Start()
	s.log.Info("sweeper started", "spec", s.spec, "dir", s.dir)

	go s.Sweep()
	return nil
}

func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("sweeper stopped")
}

// Sweep removes stale PDFs and abandoned temp files and returns how many
// files were deleted.
func (s *Sweeper) Sweep() int {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.log.Error("sweep: read output dir", "dir", s.dir, "error", err)
		return 0
	}

	cutoff := s.now().Add(-s.maxAge)
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !sweepable(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(s.dir, e.Name())
		if err := os.Remove(path); err != nil {
			s.log.Error("sweep: failed to delete file", "path", path, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		s.log.Info("sweep complete", "removed", removed)
	}
	return removed
}

func sweepable(name string) bool {
	return strings.HasSuffix(name, ".pdf") || strings.HasSuffix(name, ".tmp")
}

// Package health aggregates readiness checks for the server's dependencies.
package health

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

type Service struct {
	checkers []Checker
}

func NewService(checkers ...Checker) *Service {
	return &Service{checkers: checkers}
}

// Ready runs every checker and reports the first failure prefixed with the
// checker's name.
func (s *Service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return fmt.Errorf("%s: %w", ch.Name(), err)
		}
	}
	return nil
}

// DirChecker verifies that the output directory exists and is writable.
type DirChecker struct{ dir string }

func NewDirChecker(dir string) *DirChecker { return &DirChecker{dir: dir} }

func (c *DirChecker) Name() string { return "output_dir" }

func (c *DirChecker) Check(context.Context) error {
	f, err := os.CreateTemp(c.dir, ".ready-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

// BinaryChecker verifies that the converter executable is still present.
type BinaryChecker struct{ path string }

func NewBinaryChecker(path string) *BinaryChecker { return &BinaryChecker{path: path} }

func (c *BinaryChecker) Name() string { return "converter" }

func (c *BinaryChecker) Check(context.Context) error {
	info, err := os.Stat(c.path)
	if err != nil {
		return err
	}
	if info.IsDir() || info.Mode()&0o111 == 0 {
		return errors.New("not executable: " + c.path)
	}
	return nil
}

type pinger interface {
	Ping(ctx context.Context) error
}

type PostgresChecker struct {
	pool pinger
}

func NewPostgresChecker(pool pinger) *PostgresChecker {
	return &PostgresChecker{pool: pool}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return c.pool.Ping(ctx)
}

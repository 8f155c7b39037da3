package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgconn"
)

type execer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// Migration is a single idempotent schema step.
type Migration struct {
	Name  string
	Query string
}

var migrations = []Migration{
	{
		Name: "create_generated_documents",
		Query: `
		CREATE TABLE IF NOT EXISTS generated_documents (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			file_name TEXT NOT NULL DEFAULT '',
			file_path TEXT NOT NULL DEFAULT '',
			file_size BIGINT NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			expires_at TIMESTAMPTZ
		);`,
	},
	{
		Name:  "index_generated_documents_created_at",
		Query: `CREATE INDEX IF NOT EXISTS generated_documents_created_at_idx ON generated_documents (created_at);`,
	},
}

// RunMigrations applies every migration in order and stops at the first
// failure.
func RunMigrations(ctx context.Context, db execer, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("Starting database migrations")

	for _, m := range migrations {
		if _, err := db.Exec(ctx, m.Query); err != nil {
			logger.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		logger.Info("Migration completed", "name", m.Name)
	}

	logger.Info("All migrations completed successfully")
	return nil
}

package migration

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecer struct {
	queries []string
	failAt  int
}

func (r *recordingExecer) Exec(_ context.Context, sql string, _ ...interface{}) (pgconn.CommandTag, error) {
	r.queries = append(r.queries, sql)
	if r.failAt > 0 && len(r.queries) == r.failAt {
		return nil, errors.New("permission denied")
	}
	return pgconn.CommandTag("CREATE TABLE"), nil
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestRunMigrations(t *testing.T) {
	db := &recordingExecer{}
	require.NoError(t, RunMigrations(context.Background(), db, discard()))
	require.Len(t, db.queries, len(migrations))
	assert.Contains(t, db.queries[0], "CREATE TABLE IF NOT EXISTS generated_documents")
}

func TestRunMigrations_StopsOnError(t *testing.T) {
	db := &recordingExecer{failAt: 1}
	err := RunMigrations(context.Background(), db, discard())
	assert.EqualError(t, err, "permission denied")
	assert.Len(t, db.queries, 1)
}

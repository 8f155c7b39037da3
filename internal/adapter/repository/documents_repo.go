package repository

import (
	"context"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/domain"
)

type execer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// DocumentsRepo keeps an audit row per generation attempt. It never stores
// the PDF itself.
type DocumentsRepo struct {
	db execer
}

// NewDocumentsRepo returns a repo backed by pool. A nil pool yields a repo
// whose writes are no-ops.
func NewDocumentsRepo(pool *pgxpool.Pool) *DocumentsRepo {
	if pool == nil {
		return &DocumentsRepo{}
	}
	return &DocumentsRepo{db: pool}
}

func (r *DocumentsRepo) Record(ctx context.Context, doc *domain.GeneratedDocument, status, errMsg string) error {
	if r.db == nil {
		return nil
	}

	var expiresAt *time.Time
	if !doc.ExpiresAt.IsZero() {
		expiresAt = &doc.ExpiresAt
	}
	createdAt := doc.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.db.Exec(ctx, `INSERT INTO generated_documents (id, name, email, file_name, file_path, file_size, status, error, created_at, expires_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, error = EXCLUDED.error, file_path = EXCLUDED.file_path, file_size = EXCLUDED.file_size, expires_at = EXCLUDED.expires_at`,
		doc.ID, doc.Name, doc.Email, doc.FileName, doc.Path, doc.Size, status, errMsg, createdAt, expiresAt)
	return err
}

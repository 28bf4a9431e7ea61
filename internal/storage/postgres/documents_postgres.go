package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/penshopx/PUB-Latih-LMS1/internal/storage/docstore"
)

// DocumentsPostgres implements docstore.Store on a single key/jsonb table.
type DocumentsPostgres struct {
	db *pgxpool.Pool
}

func NewDocumentsPostgres(db *pgxpool.Pool) *DocumentsPostgres {
	return &DocumentsPostgres{db: db}
}

func (r *DocumentsPostgres) Load(ctx context.Context, name string) ([]byte, error) {
	const query = `SELECT doc FROM ledger_documents WHERE name = $1`
	var doc []byte
	err := r.db.QueryRow(ctx, query, name).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, docstore.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load document %s: %w", name, err)
	}
	return doc, nil
}

func (r *DocumentsPostgres) Save(ctx context.Context, name string, doc []byte) error {
	const query = `
		INSERT INTO ledger_documents (name, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE
		   SET doc = EXCLUDED.doc, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, name, doc); err != nil {
		return fmt.Errorf("failed to save document %s: %w", name, err)
	}
	return nil
}

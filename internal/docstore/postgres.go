// Copyright (c) 2026 Daniyar Maskun <hello@daniyar.design>
// All rights reserved. See LICENSE for details.

package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Postgres implements Store on a single JSONB documents table.
type Postgres struct {
	db *sql.DB
}

// NewPostgres creates a Postgres-backed document store on the given
// connection pool.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Get returns the document data for (collection, id), or ErrNotFound.
func (s *Postgres) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT data FROM documents WHERE collection = $1 AND id = $2
	`, collection, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get document %s/%s: %w", collection, id, err)
	}
	return data, nil
}

// List returns every document in the collection, newest first.
func (s *Postgres) List(ctx context.Context, collection string) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, data FROM documents
		WHERE collection = $1
		ORDER BY created_at DESC
	`, collection)
	if err != nil {
		return nil, fmt.Errorf("list documents %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		var data []byte
		if err := rows.Scan(&d.ID, &data); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		d.Data = data
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Create stores data under a freshly generated key and returns the key.
func (s *Postgres) Create(ctx context.Context, collection string, data json.RawMessage) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)
	`, collection, id, []byte(data))
	if err != nil {
		return "", fmt.Errorf("create document %s: %w", collection, err)
	}
	return id, nil
}

// Merge deep-merges patch into the stored document under a row lock,
// creating the document when absent. Read-modify-write keeps the merge
// semantics identical to the in-memory implementation.
func (s *Postgres) Merge(ctx context.Context, collection, id string, patch json.RawMessage) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("merge document %s/%s: begin: %w", collection, id, err)
	}
	defer tx.Rollback()

	var cur []byte
	err = tx.QueryRowContext(ctx, `
		SELECT data FROM documents WHERE collection = $1 AND id = $2 FOR UPDATE
	`, collection, id).Scan(&cur)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("merge document %s/%s: read: %w", collection, id, err)
	}

	merged, err := mergeJSON(cur, patch)
	if err != nil {
		return fmt.Errorf("merge document %s/%s: %w", collection, id, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)
		ON CONFLICT (collection, id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`, collection, id, []byte(merged))
	if err != nil {
		return fmt.Errorf("merge document %s/%s: write: %w", collection, id, err)
	}

	return tx.Commit()
}

// Delete removes the document. Missing documents are not an error.
func (s *Postgres) Delete(ctx context.Context, collection, id string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM documents WHERE collection = $1 AND id = $2
	`, collection, id)
	if err != nil {
		return fmt.Errorf("delete document %s/%s: %w", collection, id, err)
	}
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
	"github.com/custodia-labs/docshelf-cli/internal/core/ports/driven"
)

// listCache implements driven.ListCache.
type listCache struct {
	store *Store
}

var _ driven.ListCache = (*listCache)(nil)

// Put replaces the cached list for the workspace, filter and sort combination.
func (c *listCache) Put(
	ctx context.Context, workspaceID string, filter domain.TypeFilter, sort domain.SortOrder, docs []domain.Document,
) error {
	payload, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("marshalling documents: %w", err)
	}

	_, err = c.store.db.ExecContext(ctx, `
		INSERT INTO list_cache (workspace_id, type_filter, sort_order, documents, cached_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(workspace_id, type_filter, sort_order) DO UPDATE SET
			documents = excluded.documents,
			cached_at = excluded.cached_at
	`, workspaceID, string(filter), string(sort), string(payload))

	if err != nil {
		return fmt.Errorf("caching document list: %w", err)
	}
	return nil
}

// Get returns the cached list for the combination.
func (c *listCache) Get(
	ctx context.Context, workspaceID string, filter domain.TypeFilter, sort domain.SortOrder,
) ([]domain.Document, error) {
	row := c.store.db.QueryRowContext(ctx, `
		SELECT documents FROM list_cache
		WHERE workspace_id = ? AND type_filter = ? AND sort_order = ?
	`, workspaceID, string(filter), string(sort))

	var payload string
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning cached list: %w", err)
	}

	var docs []domain.Document
	if err := json.Unmarshal([]byte(payload), &docs); err != nil {
		return nil, fmt.Errorf("unmarshaling cached list: %w", err)
	}

	return docs, nil
}

// Invalidate drops every cached list for the workspace.
func (c *listCache) Invalidate(ctx context.Context, workspaceID string) error {
	if _, err := c.store.db.ExecContext(ctx, "DELETE FROM list_cache WHERE workspace_id = ?", workspaceID); err != nil {
		return fmt.Errorf("invalidating cached lists: %w", err)
	}
	return nil
}

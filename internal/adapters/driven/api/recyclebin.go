package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
	"github.com/custodia-labs/docshelf-cli/internal/core/ports/driven"
)

// recycleBinClient implements driven.RecycleBinAPI.
type recycleBinClient struct {
	c *Client
}

var _ driven.RecycleBinAPI = (*recycleBinClient)(nil)

// RecycleBin returns a RecycleBinAPI backed by this client.
func (c *Client) RecycleBin() driven.RecycleBinAPI {
	return &recycleBinClient{c: c}
}

// ListDeleted returns every soft-deleted document visible to the user.
func (r *recycleBinClient) ListDeleted(ctx context.Context) ([]domain.Document, error) {
	var payload struct {
		Success   bool           `json:"success"`
		Documents []wireDocument `json:"documents"`
	}
	if err := r.c.doJSON(ctx, http.MethodGet, "/documents/deleted/all", nil, nil, &payload); err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, fmt.Errorf("%w: deleted listing not successful", domain.ErrMalformedResponse)
	}

	return wireDocuments(payload.Documents), nil
}

// Restore moves a soft-deleted document back into its workspace.
func (r *recycleBinClient) Restore(ctx context.Context, id string) error {
	path := "/documents/" + url.PathEscape(id) + "/restore"
	return r.c.doJSON(ctx, http.MethodPut, path, nil, nil, nil)
}

// PermanentDelete removes a soft-deleted document for good.
func (r *recycleBinClient) PermanentDelete(ctx context.Context, id string) error {
	path := "/documents/" + url.PathEscape(id) + "/permanent-delete"
	return r.c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

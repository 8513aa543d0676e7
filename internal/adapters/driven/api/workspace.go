package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
	"github.com/custodia-labs/docshelf-cli/internal/core/ports/driven"
)

// workspaceClient implements driven.WorkspaceAPI.
type workspaceClient struct {
	c *Client
}

var _ driven.WorkspaceAPI = (*workspaceClient)(nil)

// Workspaces returns a WorkspaceAPI backed by this client.
func (c *Client) Workspaces() driven.WorkspaceAPI {
	return &workspaceClient{c: c}
}

// List returns all workspaces owned by the user with the given NID.
func (w *workspaceClient) List(ctx context.Context, userNID string) ([]domain.Workspace, error) {
	var payload struct {
		Success    bool            `json:"success"`
		Workspaces []wireWorkspace `json:"workspaces"`
	}
	if err := w.c.doJSON(ctx, http.MethodGet, "/workspace/"+url.PathEscape(userNID), nil, nil, &payload); err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, fmt.Errorf("%w: workspace listing not successful", domain.ErrMalformedResponse)
	}

	workspaces := make([]domain.Workspace, len(payload.Workspaces))
	for i, ws := range payload.Workspaces {
		workspaces[i] = ws.toDomain()
	}
	return workspaces, nil
}

// Create creates a workspace and returns the server-assigned record.
func (w *workspaceClient) Create(ctx context.Context, name, userNID string) (*domain.Workspace, error) {
	body := struct {
		Name    string `json:"name"`
		UserNID string `json:"userNid"`
	}{Name: name, UserNID: userNID}

	var payload struct {
		Success   bool           `json:"success"`
		Workspace *wireWorkspace `json:"workspace"`
	}
	if err := w.c.doJSON(ctx, http.MethodPost, "/workspace", nil, body, &payload); err != nil {
		return nil, err
	}
	if !payload.Success || payload.Workspace == nil {
		return nil, fmt.Errorf("%w: create workspace response missing workspace", domain.ErrMalformedResponse)
	}

	workspace := payload.Workspace.toDomain()
	return &workspace, nil
}

// Rename changes a workspace's display name.
func (w *workspaceClient) Rename(ctx context.Context, id, name string) error {
	body := struct {
		Name string `json:"name"`
	}{Name: name}

	return w.c.doJSON(ctx, http.MethodPut, "/workspace/"+url.PathEscape(id), nil, body, nil)
}

// Delete removes a workspace.
func (w *workspaceClient) Delete(ctx context.Context, id string) error {
	return w.c.doJSON(ctx, http.MethodDelete, "/workspace/"+url.PathEscape(id), nil, nil, nil)
}

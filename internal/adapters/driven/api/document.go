package api

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
	"github.com/custodia-labs/docshelf-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docshelf-cli/internal/logger"
)

// documentClient implements driven.DocumentAPI.
type documentClient struct {
	c *Client
}

var _ driven.DocumentAPI = (*documentClient)(nil)

// Documents returns a DocumentAPI backed by this client.
func (c *Client) Documents() driven.DocumentAPI {
	return &documentClient{c: c}
}

// List returns the documents of a workspace.
func (d *documentClient) List(
	ctx context.Context, workspaceID string, filter domain.TypeFilter, sort domain.SortOrder,
) ([]domain.Document, error) {
	query := url.Values{}
	if filter != domain.FilterAll {
		query.Set("type", string(filter))
	}
	if sort != domain.SortNone {
		query.Set("sort", string(sort))
	}

	var payload struct {
		Success   bool           `json:"success"`
		Documents []wireDocument `json:"documents"`
	}
	path := "/documents/workspace/" + url.PathEscape(workspaceID)
	if err := d.c.doJSON(ctx, http.MethodGet, path, query, nil, &payload); err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, fmt.Errorf("%w: document listing not successful", domain.ErrMalformedResponse)
	}

	return wireDocuments(payload.Documents), nil
}

// Search returns documents in the workspace matching the query.
//
// The authoritative response shape is the {success, documents} envelope;
// a bare JSON array is rejected as malformed rather than tolerated.
func (d *documentClient) Search(ctx context.Context, workspaceID, query string) ([]domain.Document, error) {
	q := url.Values{}
	q.Set("workspaceId", workspaceID)
	q.Set("query", query)

	var payload struct {
		Success   bool           `json:"success"`
		Documents []wireDocument `json:"documents"`
	}
	if err := d.c.doJSON(ctx, http.MethodGet, "/documents/search", q, nil, &payload); err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, fmt.Errorf("%w: search response not successful", domain.ErrMalformedResponse)
	}

	return wireDocuments(payload.Documents), nil
}

// Upload sends the named file as multipart form data.
func (d *documentClient) Upload(ctx context.Context, workspaceID, path string) (*domain.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	var buf io.Reader
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	buf = pr

	go func() {
		part, err := writer.CreateFormFile("file", filepath.Base(path))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		if err := writer.WriteField("workspaceId", workspaceID); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	if err := d.c.limiterWait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.c.baseURL+"/documents/upload", buf)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	d.c.setAuthHeaders(req)

	logger.Debug("POST %s/documents/upload (%s)", d.c.baseURL, filepath.Base(path))

	resp, err := d.c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, readAPIError(resp)
	}

	var payload struct {
		Success  bool          `json:"success"`
		Document *wireDocument `json:"document"`
	}
	if err := decodeBody(resp.Body, &payload); err != nil {
		return nil, err
	}
	if !payload.Success || payload.Document == nil {
		return nil, fmt.Errorf("%w: upload response missing document", domain.ErrMalformedResponse)
	}

	doc := payload.Document.toDomain()
	return &doc, nil
}

// Rename updates the document's display name.
func (d *documentClient) Rename(ctx context.Context, id, name string) error {
	body := struct {
		Name string `json:"name"`
	}{Name: name}

	var payload struct {
		Document *wireDocument `json:"document"`
	}
	path := "/documents/" + url.PathEscape(id) + "/metadata"
	if err := d.c.doJSON(ctx, http.MethodPut, path, nil, body, &payload); err != nil {
		return err
	}
	if payload.Document == nil {
		return fmt.Errorf("%w: rename response missing document", domain.ErrMalformedResponse)
	}
	return nil
}

// SoftDelete moves the document to the recycle bin.
func (d *documentClient) SoftDelete(ctx context.Context, id string) error {
	path := "/documents/" + url.PathEscape(id) + "/soft-delete"
	return d.c.doJSON(ctx, http.MethodPut, path, nil, nil, nil)
}

// Preview returns the inline thumbnail payload.
func (d *documentClient) Preview(ctx context.Context, id string) (string, error) {
	var payload struct {
		Success bool   `json:"success"`
		Preview string `json:"preview"`
	}
	path := "/documents/" + url.PathEscape(id) + "/preview"
	if err := d.c.doJSON(ctx, http.MethodGet, path, nil, nil, &payload); err != nil {
		return "", err
	}
	if !payload.Success {
		return "", fmt.Errorf("%w: preview response not successful", domain.ErrMalformedResponse)
	}
	return payload.Preview, nil
}

// View returns the inline representation for rendering.
func (d *documentClient) View(ctx context.Context, id string) (*domain.DocumentView, error) {
	var payload struct {
		Success bool   `json:"success"`
		Name    string `json:"name"`
		Type    string `json:"type"`
		Data    string `json:"data"`
	}
	path := "/documents/" + url.PathEscape(id) + "/view"
	if err := d.c.doJSON(ctx, http.MethodGet, path, nil, nil, &payload); err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, fmt.Errorf("%w: view response not successful", domain.ErrMalformedResponse)
	}

	return &domain.DocumentView{
		Name: payload.Name,
		Type: payload.Type,
		Data: payload.Data,
	}, nil
}

// Download streams the document into dir and returns the path of the
// written file. The filename comes from Content-Disposition, falling back
// to the document ID.
func (d *documentClient) Download(ctx context.Context, id, dir string) (string, error) {
	path := "/documents/" + url.PathEscape(id) + "/download"
	resp, err := d.c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	name := downloadFilename(resp.Header.Get("Content-Disposition"), id)
	target := filepath.Join(dir, name)

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("writing %s: %w", target, err)
	}

	return target, nil
}

// downloadFilename extracts the filename from a Content-Disposition header.
func downloadFilename(disposition, fallback string) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			if name := filepath.Base(params["filename"]); name != "" && name != "." && name != string(filepath.Separator) {
				return name
			}
		}
	}
	return fallback
}

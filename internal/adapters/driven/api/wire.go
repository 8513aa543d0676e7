package api

import (
	"time"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
)

// Wire types mirror the server's JSON payloads exactly. Conversions to
// domain types happen here so the rest of the client never sees raw JSON
// field names like "_id".

type wireDocument struct {
	ID              string    `json:"_id"`
	WorkspaceID     string    `json:"workspaceId"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	UploadedAt      time.Time `json:"uploadedAt"`
	ThumbnailBase64 string    `json:"thumbnailBase64"`
}

func (w wireDocument) toDomain() domain.Document {
	return domain.Document{
		ID:              w.ID,
		WorkspaceID:     w.WorkspaceID,
		Name:            w.Name,
		Type:            w.Type,
		UploadedAt:      w.UploadedAt,
		ThumbnailBase64: w.ThumbnailBase64,
	}
}

func wireDocuments(ws []wireDocument) []domain.Document {
	docs := make([]domain.Document, len(ws))
	for i, w := range ws {
		docs[i] = w.toDomain()
	}
	return docs
}

type wireWorkspace struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	UserNID   string    `json:"userNid"`
	CreatedAt time.Time `json:"createdAt"`
}

func (w wireWorkspace) toDomain() domain.Workspace {
	return domain.Workspace{
		ID:        w.ID,
		Name:      w.Name,
		UserNID:   w.UserNID,
		CreatedAt: w.CreatedAt,
	}
}

type wireUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	NID   string `json:"nid"`
}

func (w wireUser) toDomain() domain.User {
	return domain.User{
		ID:    w.ID,
		Name:  w.Name,
		Email: w.Email,
		NID:   w.NID,
	}
}

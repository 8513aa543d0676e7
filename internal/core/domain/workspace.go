package domain

import "time"

// Workspace is a named container of documents owned by a single user.
type Workspace struct {
	// ID is the server-assigned identifier.
	ID string

	// Name is the display name, changed by rename.
	Name string

	// UserNID is the national ID of the owning user.
	UserNID string

	// CreatedAt is when the workspace was created.
	CreatedAt time.Time
}

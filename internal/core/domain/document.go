package domain

import (
	"strings"
	"time"
)

// Document represents a file stored in a workspace on the remote service.
// The server assigns the ID; everything except Name is immutable after upload.
type Document struct {
	// ID is the server-assigned identifier, stable across renames.
	ID string

	// WorkspaceID links to the owning Workspace.
	WorkspaceID string

	// Name is the display name, changed by rename.
	Name string

	// Type is the MIME content type reported at upload.
	Type string

	// UploadedAt is when the document was uploaded.
	UploadedAt time.Time

	// ThumbnailBase64 is a small inline preview for image types.
	// Empty when the server produced no thumbnail.
	ThumbnailBase64 string
}

// IsImage reports whether the document is an image type.
func (d Document) IsImage() bool {
	return strings.HasPrefix(d.Type, "image/")
}

// IsPDF reports whether the document is a PDF.
func (d Document) IsPDF() bool {
	return d.Type == "application/pdf"
}

// DocumentView is the inline representation returned by the view endpoint,
// suitable for rendering without a separate download.
type DocumentView struct {
	Name string
	Type string
	Data string
}

// TypeFilter narrows a workspace listing to a single content type.
// The zero value means no filtering.
type TypeFilter string

// Type filters understood by the listing endpoint.
const (
	FilterAll  TypeFilter = ""
	FilterPDF  TypeFilter = "pdf"
	FilterJPEG TypeFilter = "image/jpeg"
	FilterPNG  TypeFilter = "image/png"
	FilterWord TypeFilter = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// SortOrder selects the server-side ordering of a workspace listing.
// The zero value leaves ordering to the server default.
type SortOrder string

// Sort orders understood by the listing endpoint.
const (
	SortNone     SortOrder = ""
	SortRecent   SortOrder = "recent"
	SortOldest   SortOrder = "oldest"
	SortSizeAsc  SortOrder = "sizeAsc"
	SortSizeDesc SortOrder = "sizeDesc"
)

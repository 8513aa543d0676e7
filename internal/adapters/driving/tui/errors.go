package tui

import "errors"

// Errors returned when required ports are missing.
var (
	ErrMissingSessionService    = errors.New("session service is required")
	ErrMissingWorkspaceService  = errors.New("workspace service is required")
	ErrMissingDocumentService   = errors.New("document service is required")
	ErrMissingRecycleBinService = errors.New("recycle bin service is required")
)

// Package domain defines the core business entities for docshelf.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A file stored in a workspace on the remote service
//   - Workspace: A named container of documents owned by a user
//   - User / Session: The authenticated identity and bearer token
//   - RequestState: Lifecycle of a single remote operation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - AuthAPI, WorkspaceAPI, DocumentAPI, RecycleBinAPI, ProfileAPI:
//     the remote document-management service, reached over HTTPS
//   - SessionStore: persists the session token and profile between runs
//   - ConfigStore: application configuration
//
// # Optional Interfaces
//
//   - ListCache: persists the last fetched document list per workspace so
//     a fresh process can render something before the first fetch lands.
//     Core degrades gracefully when it is nil.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

// Package sqlite provides SQLite-backed local persistence for the session
// and the per-workspace document list cache.
package sqlite

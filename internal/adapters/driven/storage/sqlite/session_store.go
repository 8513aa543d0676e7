package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
	"github.com/custodia-labs/docshelf-cli/internal/core/ports/driven"
)

// sessionStore implements driven.SessionStore.
type sessionStore struct {
	store *Store
}

var _ driven.SessionStore = (*sessionStore)(nil)

// Save stores the session, replacing any previous one.
func (s *sessionStore) Save(ctx context.Context, session domain.Session) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO session (id, user_id, name, email, nid, token, saved_at)
		VALUES (1, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			name = excluded.name,
			email = excluded.email,
			nid = excluded.nid,
			token = excluded.token,
			saved_at = excluded.saved_at
	`, session.User.ID, session.User.Name, session.User.Email, session.User.NID, session.Token)

	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// Load returns the stored session.
func (s *sessionStore) Load(ctx context.Context) (domain.Session, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT user_id, name, email, nid, token FROM session WHERE id = 1
	`)

	var session domain.Session
	if err := row.Scan(&session.User.ID, &session.User.Name, &session.User.Email,
		&session.User.NID, &session.Token); err != nil {
		if err == sql.ErrNoRows {
			return domain.Session{}, domain.ErrNotFound
		}
		return domain.Session{}, fmt.Errorf("scanning session: %w", err)
	}

	return session, nil
}

// Clear removes the stored session.
func (s *sessionStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM session WHERE id = 1"); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

// User is the profile returned by the authentication service.
type User struct {
	ID    int
	Name  string
	Email string
	NID   string
}

// Session holds the authenticated user and their bearer token.
// The zero value is the logged-out state.
type Session struct {
	User  User
	Token string
}

// Active reports whether the session carries a token.
func (s Session) Active() bool {
	return s.Token != ""
}

// Registration is the payload for creating an account.
type Registration struct {
	Name     string
	Email    string
	Password string
	NID      string
}

// NID length required by the backend (14-digit national ID).
const nidLength = 14

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 6

// Validate checks the registration fields client-side so invalid
// submissions never reach the network.
func (r Registration) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if len(r.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if len(r.NID) != nidLength {
		return fmt.Errorf("%w: national ID must be %d digits", ErrInvalidInput, nidLength)
	}
	for _, c := range r.NID {
		if !unicode.IsDigit(c) {
			return fmt.Errorf("%w: national ID must contain only digits", ErrInvalidInput)
		}
	}
	return nil
}

// Credentials is the payload for logging in.
type Credentials struct {
	Email    string
	Password string
}

// Validate checks the login fields client-side.
func (c Credentials) Validate() error {
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if c.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	return nil
}

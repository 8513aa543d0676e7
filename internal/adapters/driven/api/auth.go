package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
)

// Register creates an account.
func (c *Client) Register(ctx context.Context, reg domain.Registration) error {
	body := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		NID      string `json:"nid"`
	}{
		Name:     reg.Name,
		Email:    reg.Email,
		Password: reg.Password,
		NID:      reg.NID,
	}

	return c.doJSON(ctx, http.MethodPost, "/auth/register", nil, body, nil)
}

// Login exchanges credentials for a user profile and bearer token.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{
		Email:    creds.Email,
		Password: creds.Password,
	}

	var payload struct {
		User  *wireUser `json:"user"`
		Token string    `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, body, &payload); err != nil {
		return domain.Session{}, err
	}

	if payload.User == nil || payload.Token == "" {
		return domain.Session{}, fmt.Errorf("%w: login response missing user or token", domain.ErrMalformedResponse)
	}

	return domain.Session{
		User:  payload.User.toDomain(),
		Token: payload.Token,
	}, nil
}

// UpdateName changes the authenticated user's display name.
func (c *Client) UpdateName(ctx context.Context, name string) (string, error) {
	body := struct {
		Name string `json:"name"`
	}{Name: name}

	var payload struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodPut, "/user/profile/update-name", nil, body, &payload); err != nil {
		return "", err
	}

	return payload.Message, nil
}

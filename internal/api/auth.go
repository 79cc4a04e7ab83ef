package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/project-jobexec/board-client/internal/domain"
)

// AuthResult is a successful login or registration: a bearer token plus
// the authenticated user's full profile.
type AuthResult struct {
	Token string
	User  domain.User
}

// Login authenticates against the backend. The response carries the
// token alongside the user fields in one flat object.
func (c *Client) Login(ctx context.Context, email, password string, role domain.Role) (*AuthResult, error) {
	body := map[string]any{"email": email, "password": password, "role": role}
	raw, err := c.doRaw(ctx, http.MethodPost, "/auth/login", body)
	if err != nil {
		return nil, err
	}
	return decodeAuthResult(raw)
}

// Register creates an account; success implies immediate login.
func (c *Client) Register(ctx context.Context, name, email, password string, role domain.Role) (*AuthResult, error) {
	body := map[string]any{"name": name, "email": email, "password": password, "role": role}
	raw, err := c.doRaw(ctx, http.MethodPost, "/auth/register", body)
	if err != nil {
		return nil, err
	}
	return decodeAuthResult(raw)
}

// Logout tells the backend to drop the session. Best effort: the
// session store clears local state whether or not this succeeds.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Profile fetches the authenticated user's profile
func (c *Client) Profile(ctx context.Context) (domain.User, error) {
	raw, err := c.doRaw(ctx, http.MethodGet, "/auth/profile", nil)
	if err != nil {
		return nil, err
	}
	return domain.DecodeUser(raw)
}

// SaveProfile updates the authenticated user's own profile and returns
// the server's authoritative copy.
func (c *Client) SaveProfile(ctx context.Context, user domain.User) (domain.User, error) {
	raw, err := c.doRaw(ctx, http.MethodPut, "/auth/profile", user)
	if err != nil {
		return nil, err
	}
	return domain.DecodeUser(raw)
}

func decodeAuthResult(raw []byte) (*AuthResult, error) {
	var tok struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("parse auth response: %w", err)
	}
	if tok.Token == "" {
		return nil, fmt.Errorf("auth response carried no token")
	}

	user, err := domain.DecodeUser(raw)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: tok.Token, User: user}, nil
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/project-jobexec/board-client/internal/domain"
)

// Seekers lists every job seeker account
func (c *Client) Seekers(ctx context.Context) ([]domain.Seeker, error) {
	var seekers []domain.Seeker
	if err := c.do(ctx, http.MethodGet, "/user?role=seeker", nil, &seekers); err != nil {
		return nil, err
	}
	return seekers, nil
}

// Companies lists every company account
func (c *Client) Companies(ctx context.Context) ([]domain.Company, error) {
	var companies []domain.Company
	if err := c.do(ctx, http.MethodGet, "/user?role=company", nil, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// AdminUsers lists all accounts regardless of role. Admin only.
func (c *Client) AdminUsers(ctx context.Context) ([]domain.User, error) {
	raw, err := c.doRaw(ctx, http.MethodGet, "/user/admin/users", nil)
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse user list: %w", err)
	}

	users := make([]domain.User, 0, len(items))
	for _, item := range items {
		user, err := domain.DecodeUser(item)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// AdminDeleteUser removes an account by id. Admin only.
func (c *Client) AdminDeleteUser(ctx context.Context, userID string) error {
	path := "/user/admin/users/" + url.PathEscape(userID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// AdminSaveUser would let an admin edit another account's profile.
// The backend only exposes PUT /auth/profile for the caller's own
// account, so this fails loudly instead of pretending to save.
func (c *Client) AdminSaveUser(ctx context.Context, user domain.User) (domain.User, error) {
	return nil, ErrNotSupported
}

// AddReview would attach a company review. The review form shipped
// before the backend route did; fail loudly until it exists.
func (c *Client) AddReview(ctx context.Context, companyID string, rating int, text string) error {
	return ErrNotSupported
}

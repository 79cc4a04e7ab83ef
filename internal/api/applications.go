package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/project-jobexec/board-client/internal/domain"
)

// Apply submits the authenticated seeker's application to a job.
// The body is empty: the backend derives the seeker from the token.
func (c *Client) Apply(ctx context.Context, jobID string) (*domain.Application, error) {
	var app domain.Application
	path := "/applications/job/" + url.PathEscape(jobID)
	if err := c.do(ctx, http.MethodPost, path, nil, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// MyApplications lists the authenticated seeker's applications
func (c *Client) MyApplications(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	if err := c.do(ctx, http.MethodGet, "/applications", nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// JobApplications lists every application for one posting.
// Company or admin only.
func (c *Client) JobApplications(ctx context.Context, jobID string) ([]domain.Application, error) {
	var apps []domain.Application
	path := "/applications/job/" + url.PathEscape(jobID)
	if err := c.do(ctx, http.MethodGet, path, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateApplicationStatus moves an application to a new stage
func (c *Client) UpdateApplicationStatus(ctx context.Context, appID string, status domain.ApplicationStatus) (*domain.Application, error) {
	var app domain.Application
	path := "/applications/" + url.PathEscape(appID) + "/status"
	body := map[string]any{"status": status}
	if err := c.do(ctx, http.MethodPut, path, body, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

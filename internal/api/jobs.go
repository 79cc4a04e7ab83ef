package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/project-jobexec/board-client/internal/domain"
)

// Jobs lists postings, optionally filtered by a free-text query
func (c *Client) Jobs(ctx context.Context, query string) ([]domain.Job, error) {
	path := "/jobs"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}

	var jobs []domain.Job
	if err := c.do(ctx, http.MethodGet, path, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Job fetches one posting by id
func (c *Client) Job(ctx context.Context, jobID string) (*domain.Job, error) {
	var job domain.Job
	if err := c.do(ctx, http.MethodGet, "/jobs/"+url.PathEscape(jobID), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// EmployerJobs lists the authenticated company's own postings
func (c *Client) EmployerJobs(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := c.do(ctx, http.MethodGet, "/jobs/employer/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// SaveJob creates the posting when it has no id yet, updates it
// otherwise. Either way the server's copy comes back.
func (c *Client) SaveJob(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	method := http.MethodPost
	path := "/jobs"
	if job.ID != "" {
		method = http.MethodPut
		path = "/jobs/" + url.PathEscape(job.ID)
	}

	var saved domain.Job
	if err := c.do(ctx, method, path, job, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteJob removes a posting by id
func (c *Client) DeleteJob(ctx context.Context, jobID string) error {
	return c.do(ctx, http.MethodDelete, "/jobs/"+url.PathEscape(jobID), nil, nil)
}

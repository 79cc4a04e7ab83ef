package actions

import (
	"context"

	"github.com/project-jobexec/board-client/internal/api"
	"github.com/project-jobexec/board-client/internal/domain"
)

// ApplyToJob submits the seeker's application. Duplicates are blocked
// before any network call: the applied set only ever grows through a
// successful apply.
func (c *Coordinator) ApplyToJob(ctx context.Context, jobID string) error {
	sess, ok := c.sessions.Current()
	if !ok {
		c.notifier.Failure("Must be logged in as a Seeker to apply.")
		return ErrNotAuthenticated
	}
	seeker, ok := sess.User.(*domain.Seeker)
	if !ok {
		c.notifier.Failure("Must be logged in as a Seeker to apply.")
		return ErrNotSeeker
	}
	if seeker.HasApplied(jobID) {
		c.notifier.Failure("You have already applied to this job.")
		return ErrAlreadyApplied
	}

	if _, err := c.client.Apply(ctx, jobID); err != nil {
		c.notifier.Failure("Job application failed: " + api.ErrorMessage(err))
		return err
	}

	// The profile is the authority on the applied set; re-fetch it
	// rather than growing the local copy by hand.
	updated, err := c.client.Profile(ctx)
	if err != nil {
		c.notifier.Failure("Job application failed: " + api.ErrorMessage(err))
		return err
	}
	if s, ok := updated.(*domain.Seeker); ok {
		c.cache.ReplaceSeeker(*s)
	}
	if err := c.sessions.ReplaceUser(ctx, updated); err != nil {
		return err
	}

	c.notifier.Success("Job application successful!")
	return nil
}

// SaveJob creates or updates a posting and reconciles the job cache.
// After a company saves, its own postings are re-fetched so applicant
// counts stay current.
func (c *Coordinator) SaveJob(ctx context.Context, job *domain.Job) error {
	creating := job.ID == ""

	saved, err := c.client.SaveJob(ctx, job)
	if err != nil {
		c.notifier.Failure("Failed to save job: " + api.ErrorMessage(err))
		return err
	}
	c.cache.ReplaceJob(*saved)

	if sess, ok := c.sessions.Current(); ok && sess.User.UserRole() == domain.RoleCompany {
		if own, err := c.client.EmployerJobs(ctx); err == nil {
			for _, j := range own {
				c.cache.ReplaceJob(j)
			}
		}
	}

	if creating {
		c.notifier.Success("New job posted successfully!")
	} else {
		c.notifier.Success("Job updated successfully!")
	}
	return nil
}

// DeleteJob removes a posting and drops it from the cache
func (c *Coordinator) DeleteJob(ctx context.Context, jobID string) error {
	if err := c.client.DeleteJob(ctx, jobID); err != nil {
		c.notifier.Failure("Failed to delete job: " + api.ErrorMessage(err))
		return err
	}
	c.cache.RemoveJob(jobID)
	c.notifier.Success("Job deleted successfully!")
	return nil
}

// UpdateApplicationStatus moves an application to a new stage
func (c *Coordinator) UpdateApplicationStatus(ctx context.Context, appID string, status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	app, err := c.client.UpdateApplicationStatus(ctx, appID, status)
	if err != nil {
		c.notifier.Failure("Failed to update application: " + api.ErrorMessage(err))
		return nil, err
	}
	c.notifier.Success("Application status updated!")
	return app, nil
}

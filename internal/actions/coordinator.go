package actions

import (
	"context"
	"errors"
	"log"

	"github.com/project-jobexec/board-client/internal/api"
	"github.com/project-jobexec/board-client/internal/domain"
	"github.com/project-jobexec/board-client/internal/notify"
	"github.com/project-jobexec/board-client/internal/session"
	"github.com/project-jobexec/board-client/internal/state"
)

// Client-side precondition failures. These block the mutation before
// any network call goes out.
var (
	ErrNotAuthenticated = errors.New("not signed in")
	ErrNotSeeker        = errors.New("must be signed in as a seeker")
	ErrAlreadyApplied   = errors.New("already applied to this job")
	ErrEmptyContent     = errors.New("content must not be empty")
	ErrInvalidStatus    = errors.New("unknown application status")
	ErrInvalidReaction  = errors.New("unknown reaction type")
)

// Coordinator runs every mutation the same way: validate cheap
// preconditions locally, call the backend, reconcile exactly one cache
// entry (or the session identity) with the authoritative response, and
// emit a one-shot notification. Failures become a notification carrying
// the server's message; nothing is retried and nothing mutates locally
// before the call resolves.
type Coordinator struct {
	client   *api.Client
	sessions *session.Store
	cache    *state.Collections
	notifier *notify.Notifier
}

func NewCoordinator(client *api.Client, sessions *session.Store, cache *state.Collections, notifier *notify.Notifier) *Coordinator {
	return &Coordinator{
		client:   client,
		sessions: sessions,
		cache:    cache,
		notifier: notifier,
	}
}

// Login authenticates and loads the four collections. The auth error,
// if any, is returned for the login form; a partial collection load is
// only a non-fatal notification.
func (c *Coordinator) Login(ctx context.Context, email, password string, role domain.Role) error {
	if err := c.sessions.Login(ctx, c.client, email, password, role); err != nil {
		return err
	}
	c.LoadCollections(ctx)
	return nil
}

// Register creates the account and signs in, then loads collections
func (c *Coordinator) Register(ctx context.Context, name, email, password string, role domain.Role) error {
	if err := c.sessions.Register(ctx, c.client, name, email, password, role); err != nil {
		return err
	}
	c.notifier.Success("Registration successful and logged in!")
	c.LoadCollections(ctx)
	return nil
}

// Logout tears down the session and empties every cache
func (c *Coordinator) Logout(ctx context.Context) error {
	err := c.sessions.Logout(ctx, c.client)
	c.cache.Clear()
	return err
}

// SaveProfile saves the signed-in user's profile and reconciles both
// the matching collection entry and the session identity with the
// server's copy.
func (c *Coordinator) SaveProfile(ctx context.Context, user domain.User) error {
	saved, err := c.client.SaveProfile(ctx, user)
	if err != nil {
		c.notifier.Failure("Profile update failed: " + api.ErrorMessage(err))
		return err
	}

	switch u := saved.(type) {
	case *domain.Seeker:
		c.cache.ReplaceSeeker(*u)
	case *domain.Company:
		c.cache.ReplaceCompany(*u)
	}

	if err := c.sessions.ReplaceUser(ctx, saved); err != nil {
		return err
	}
	c.notifier.Success("Profile updated successfully!")
	return nil
}

// AdminDeleteUser removes an account and drops it from the caches
func (c *Coordinator) AdminDeleteUser(ctx context.Context, userID string) error {
	if err := c.client.AdminDeleteUser(ctx, userID); err != nil {
		c.notifier.Failure("Failed to delete user: " + api.ErrorMessage(err))
		return err
	}
	c.cache.RemoveUser(userID)
	c.notifier.Success("User deleted successfully!")
	return nil
}

// AddReview surfaces the missing backend route loudly instead of
// looking like a saved review.
func (c *Coordinator) AddReview(ctx context.Context, companyID string, rating int, text string) error {
	if rating <= 0 {
		return ErrEmptyContent
	}
	err := c.client.AddReview(ctx, companyID, rating, text)
	if err != nil {
		c.notifier.Failure("Reviews are not supported yet: " + err.Error())
	}
	return err
}

// LoadCollections refreshes the four caches, used after login and
// after hydrating a persisted session. Partial failure is a non-fatal
// notification, never an aborted sign-in.
func (c *Coordinator) LoadCollections(ctx context.Context) {
	if err := c.cache.Refresh(ctx, c.client); err != nil {
		log.Printf("[actions] collection load incomplete: %v", err)
		c.notifier.Failure("Some data failed to load: " + err.Error())
	}
}

package state

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/project-jobexec/board-client/internal/domain"
)

// Loader is the slice of the resource client the caches refresh from.
// *api.Client satisfies it.
type Loader interface {
	Seekers(ctx context.Context) ([]domain.Seeker, error)
	Companies(ctx context.Context) ([]domain.Company, error)
	Jobs(ctx context.Context, query string) ([]domain.Job, error)
	BlogPosts(ctx context.Context) ([]domain.BlogPost, error)
}

// Collections holds the four client-side caches. Each one is a
// wholesale snapshot of a server-owned list: refreshed together on
// login, reconciled one element at a time after mutations, cleared
// on logout.
type Collections struct {
	mu        sync.RWMutex
	seekers   []domain.Seeker
	companies []domain.Company
	jobs      []domain.Job
	posts     []domain.BlogPost
}

func NewCollections() *Collections {
	return &Collections{}
}

// Refresh fetches all four collections concurrently and replaces
// whichever ones loaded. Best effort: a failed fetch leaves the others
// populated, is logged, and comes back in the joined error so the
// caller can raise a non-fatal notification.
func (c *Collections) Refresh(ctx context.Context, loader Loader) error {
	var wg sync.WaitGroup
	var errMu sync.Mutex
	var errs []error

	fail := func(name string, err error) {
		log.Printf("[state] load %s failed: %v", name, err)
		errMu.Lock()
		errs = append(errs, fmt.Errorf("load %s: %w", name, err))
		errMu.Unlock()
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		seekers, err := loader.Seekers(ctx)
		if err != nil {
			fail("seekers", err)
			return
		}
		c.mu.Lock()
		c.seekers = seekers
		c.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		companies, err := loader.Companies(ctx)
		if err != nil {
			fail("companies", err)
			return
		}
		c.mu.Lock()
		c.companies = companies
		c.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		jobs, err := loader.Jobs(ctx, "")
		if err != nil {
			fail("jobs", err)
			return
		}
		c.mu.Lock()
		c.jobs = jobs
		c.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		posts, err := loader.BlogPosts(ctx)
		if err != nil {
			fail("blog posts", err)
			return
		}
		c.mu.Lock()
		c.posts = posts
		c.mu.Unlock()
	}()

	wg.Wait()
	return errors.Join(errs...)
}

// Clear empties all four caches
func (c *Collections) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seekers = nil
	c.companies = nil
	c.jobs = nil
	c.posts = nil
}

func (c *Collections) Seekers() []domain.Seeker {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Seeker, len(c.seekers))
	copy(out, c.seekers)
	return out
}

func (c *Collections) Companies() []domain.Company {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Company, len(c.companies))
	copy(out, c.companies)
	return out
}

func (c *Collections) Jobs() []domain.Job {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Job, len(c.jobs))
	copy(out, c.jobs)
	return out
}

func (c *Collections) Posts() []domain.BlogPost {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.BlogPost, len(c.posts))
	copy(out, c.posts)
	return out
}

// Job returns one cached posting by id
func (c *Collections) Job(id string) (domain.Job, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, j := range c.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return domain.Job{}, false
}

// Post returns one cached blog post by id
func (c *Collections) Post(id string) (domain.BlogPost, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.posts {
		if p.ID == id {
			return p, true
		}
	}
	return domain.BlogPost{}, false
}

// ReplaceSeeker swaps the matching entry for the server's copy, or
// appends when the seeker is new to the cache.
func (c *Collections) ReplaceSeeker(seeker domain.Seeker) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, s := range c.seekers {
		if s.ID == seeker.ID {
			c.seekers[i] = seeker
			return
		}
	}
	c.seekers = append(c.seekers, seeker)
}

// ReplaceCompany swaps the matching entry, or appends a new one
func (c *Collections) ReplaceCompany(company domain.Company) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, cm := range c.companies {
		if cm.ID == company.ID {
			c.companies[i] = company
			return
		}
	}
	c.companies = append(c.companies, company)
}

// ReplaceJob swaps the matching posting; new postings go to the front
// of the list, the way the feed shows them.
func (c *Collections) ReplaceJob(job domain.Job) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, j := range c.jobs {
		if j.ID == job.ID {
			c.jobs[i] = job
			return
		}
	}
	c.jobs = append([]domain.Job{job}, c.jobs...)
}

// ReplacePost swaps the matching post; new posts go to the front
func (c *Collections) ReplacePost(post domain.BlogPost) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, p := range c.posts {
		if p.ID == post.ID {
			c.posts[i] = post
			return
		}
	}
	c.posts = append([]domain.BlogPost{post}, c.posts...)
}

// RemoveJob drops one posting by id
func (c *Collections) RemoveJob(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, j := range c.jobs {
		if j.ID == id {
			c.jobs = append(c.jobs[:i], c.jobs[i+1:]...)
			return
		}
	}
}

// RemovePost drops one blog post by id
func (c *Collections) RemovePost(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, p := range c.posts {
		if p.ID == id {
			c.posts = append(c.posts[:i], c.posts[i+1:]...)
			return
		}
	}
}

// RemoveUser drops an account from whichever list holds it
func (c *Collections) RemoveUser(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, s := range c.seekers {
		if s.ID == id {
			c.seekers = append(c.seekers[:i], c.seekers[i+1:]...)
			return
		}
	}
	for i, cm := range c.companies {
		if cm.ID == id {
			c.companies = append(c.companies[:i], c.companies[i+1:]...)
			return
		}
	}
}

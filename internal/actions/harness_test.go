package actions

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/project-jobexec/board-client/internal/api"
	"github.com/project-jobexec/board-client/internal/domain"
	"github.com/project-jobexec/board-client/internal/notify"
	"github.com/project-jobexec/board-client/internal/session"
	"github.com/project-jobexec/board-client/internal/state"
)

// fakeBackend is an in-memory board backend speaking the same REST
// contract as the real one, just enough for the coordinator flows.
type fakeBackend struct {
	mu sync.Mutex

	srv *httptest.Server

	seekers   map[string]*domain.Seeker
	companies map[string]*domain.Company
	jobs      []*domain.Job
	posts     []*domain.BlogPost

	tokens map[string]string // token -> user id
	nextID int

	applyCalls        int
	employerJobsCalls int
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{
		seekers:   make(map[string]*domain.Seeker),
		companies: make(map[string]*domain.Company),
		tokens:    make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", b.handleLogin)
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /auth/profile", b.handleProfile)
	mux.HandleFunc("GET /user", b.handleUsers)
	mux.HandleFunc("GET /jobs", b.handleJobs)
	mux.HandleFunc("GET /jobs/employer/jobs", b.handleEmployerJobs)
	mux.HandleFunc("POST /jobs", b.handleCreateJob)
	mux.HandleFunc("POST /applications/job/{id}", b.handleApply)
	mux.HandleFunc("GET /blog", b.handleBlog)
	mux.HandleFunc("POST /blog", b.handleCreatePost)
	mux.HandleFunc("PUT /blog/{id}", b.handleUpdatePost)
	mux.HandleFunc("DELETE /blog/{id}", b.handleDeletePost)
	mux.HandleFunc("PUT /blog/{id}/react", b.handleReact)
	mux.HandleFunc("POST /blog/{id}/comment", b.handleAddComment)
	mux.HandleFunc("DELETE /blog/{id}/comment/{cid}", b.handleDeleteComment)

	b.srv = httptest.NewServer(mux)
	return b
}

func (b *fakeBackend) close() { b.srv.Close() }

func (b *fakeBackend) addSeeker(id, name, email string) {
	b.seekers[id] = &domain.Seeker{ID: id, Role: domain.RoleSeeker, Name: name, Email: email}
}

func (b *fakeBackend) addCompany(id, name, email string) {
	b.companies[id] = &domain.Company{ID: id, Role: domain.RoleCompany, Name: name, Email: email}
}

func (b *fakeBackend) addJob(id, companyID, title string) {
	b.jobs = append(b.jobs, &domain.Job{ID: id, CompanyID: companyID, Title: title})
}

func (b *fakeBackend) addPost(id, authorID, content string, comments ...domain.Comment) {
	b.posts = append(b.posts, &domain.BlogPost{
		ID:        id,
		AuthorID:  authorID,
		Content:   content,
		Timestamp: time.Now(),
		Reactions: domain.ReactionSet{},
		Comments:  comments,
	})
}

func (b *fakeBackend) userByToken(r *http.Request) (domain.User, bool) {
	auth := r.Header.Get("Authorization")
	token := strings.TrimPrefix(auth, "Bearer ")
	id, ok := b.tokens[token]
	if !ok {
		return nil, false
	}
	if s, ok := b.seekers[id]; ok {
		return s, true
	}
	if c, ok := b.companies[id]; ok {
		return c, true
	}
	return nil, false
}

func (b *fakeBackend) findPost(id string) *domain.BlogPost {
	for _, p := range b.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

func (b *fakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var req struct {
		Email string      `json:"email"`
		Role  domain.Role `json:"role"`
	}
	json.NewDecoder(r.Body).Decode(&req)

	var user domain.User
	for _, s := range b.seekers {
		if s.Email == req.Email && req.Role == domain.RoleSeeker {
			user = s
		}
	}
	for _, c := range b.companies {
		if c.Email == req.Email && req.Role == domain.RoleCompany {
			user = c
		}
	}
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "Invalid credentials or role.")
		return
	}

	token := fmt.Sprintf("tok-%s", user.UserID())
	b.tokens[token] = user.UserID()

	raw, _ := json.Marshal(user)
	var flat map[string]any
	json.Unmarshal(raw, &flat)
	flat["token"] = token
	writeJSON(w, flat)
}

func (b *fakeBackend) handleProfile(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	user, ok := b.userByToken(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	writeJSON(w, user)
}

func (b *fakeBackend) handleUsers(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch r.URL.Query().Get("role") {
	case "seeker":
		out := make([]*domain.Seeker, 0, len(b.seekers))
		for _, s := range b.seekers {
			out = append(out, s)
		}
		writeJSON(w, out)
	case "company":
		out := make([]*domain.Company, 0, len(b.companies))
		for _, c := range b.companies {
			out = append(out, c)
		}
		writeJSON(w, out)
	default:
		writeErr(w, http.StatusBadRequest, "unknown role filter")
	}
}

func (b *fakeBackend) handleJobs(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, b.jobs)
}

func (b *fakeBackend) handleEmployerJobs(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.employerJobsCalls++

	user, ok := b.userByToken(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	own := []*domain.Job{}
	for _, j := range b.jobs {
		if j.CompanyID == user.UserID() {
			own = append(own, j)
		}
	}
	writeJSON(w, own)
}

func (b *fakeBackend) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	user, ok := b.userByToken(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var job domain.Job
	json.NewDecoder(r.Body).Decode(&job)
	b.nextID++
	job.ID = fmt.Sprintf("j%d", 100+b.nextID)
	job.CompanyID = user.UserID()
	job.Applicants = nil
	job.PostedAt = time.Now()
	b.jobs = append(b.jobs, &job)
	writeJSON(w, &job)
}

func (b *fakeBackend) handleApply(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.applyCalls++

	user, ok := b.userByToken(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	seeker, ok := user.(*domain.Seeker)
	if !ok {
		writeErr(w, http.StatusForbidden, "Only seekers can apply")
		return
	}

	jobID := r.PathValue("id")
	for _, applied := range seeker.AppliedJobs {
		if applied == jobID {
			writeErr(w, http.StatusBadRequest, "Already applied")
			return
		}
	}

	seeker.AppliedJobs = append(seeker.AppliedJobs, jobID)
	for _, j := range b.jobs {
		if j.ID == jobID {
			j.Applicants = append(j.Applicants, seeker.ID)
		}
	}

	b.nextID++
	writeJSON(w, &domain.Application{
		ID:       fmt.Sprintf("a%d", b.nextID),
		JobID:    jobID,
		SeekerID: seeker.ID,
		Status:   domain.StatusApplied,
	})
}

func (b *fakeBackend) handleBlog(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, b.posts)
}

func (b *fakeBackend) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var post domain.BlogPost
	json.NewDecoder(r.Body).Decode(&post)
	b.nextID++
	post.ID = fmt.Sprintf("p%d", 100+b.nextID)
	post.Timestamp = time.Now()
	post.Reactions = domain.ReactionSet{}
	post.Comments = nil
	b.posts = append(b.posts, &post)
	writeJSON(w, map[string]any{"post": &post})
}

func (b *fakeBackend) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	post := b.findPost(r.PathValue("id"))
	if post == nil {
		writeErr(w, http.StatusNotFound, "Post not found")
		return
	}
	var req struct {
		Content string `json:"content"`
	}
	json.NewDecoder(r.Body).Decode(&req)
	post.Content = req.Content
	writeJSON(w, post)
}

func (b *fakeBackend) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := r.PathValue("id")
	for i, p := range b.posts {
		if p.ID == id {
			b.posts = append(b.posts[:i], b.posts[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeErr(w, http.StatusNotFound, "Post not found")
}

func (b *fakeBackend) handleReact(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	user, ok := b.userByToken(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	post := b.findPost(r.PathValue("id"))
	if post == nil {
		writeErr(w, http.StatusNotFound, "Post not found")
		return
	}

	var req struct {
		Type domain.ReactionType `json:"type"`
	}
	json.NewDecoder(r.Body).Decode(&req)
	if post.Reactions == nil {
		post.Reactions = domain.ReactionSet{}
	}
	post.Reactions[user.UserID()] = req.Type
	writeJSON(w, post)
}

func (b *fakeBackend) handleAddComment(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	user, ok := b.userByToken(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	post := b.findPost(r.PathValue("id"))
	if post == nil {
		writeErr(w, http.StatusNotFound, "Post not found")
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	json.NewDecoder(r.Body).Decode(&req)
	b.nextID++
	post.Comments = append(post.Comments, domain.Comment{
		ID:         fmt.Sprintf("c%d", 100+b.nextID),
		AuthorID:   user.UserID(),
		AuthorName: user.DisplayName(),
		Content:    req.Content,
		Timestamp:  time.Now(),
	})
	writeJSON(w, post)
}

func (b *fakeBackend) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	post := b.findPost(r.PathValue("id"))
	if post == nil {
		writeErr(w, http.StatusNotFound, "Post not found")
		return
	}
	cid := r.PathValue("cid")
	for i, c := range post.Comments {
		if c.ID == cid {
			post.Comments = append(post.Comments[:i], post.Comments[i+1:]...)
			writeJSON(w, post)
			return
		}
	}
	writeErr(w, http.StatusNotFound, "Comment not found")
}

// env bundles a coordinator wired to a fake backend
type env struct {
	backend  *fakeBackend
	storage  *session.MemoryStorage
	sessions *session.Store
	cache    *state.Collections
	notifier *notify.Notifier
	coord    *Coordinator
}

func newEnv() *env {
	backend := newFakeBackend()
	storage := session.NewMemoryStorage()
	sessions := session.NewStore(storage)
	client := api.NewClient(backend.srv.URL, sessions, api.Config{})
	cache := state.NewCollections()
	notifier := notify.New(time.Minute)

	return &env{
		backend:  backend,
		storage:  storage,
		sessions: sessions,
		cache:    cache,
		notifier: notifier,
		coord:    NewCoordinator(client, sessions, cache, notifier),
	}
}

func (e *env) close() { e.backend.close() }

func (e *env) notification() string {
	msg, ok := e.notifier.Current()
	if !ok {
		return ""
	}
	return msg.Text
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/project-jobexec/board-client/internal/actions"
	"github.com/project-jobexec/board-client/internal/api"
	"github.com/project-jobexec/board-client/internal/config"
	"github.com/project-jobexec/board-client/internal/content"
	"github.com/project-jobexec/board-client/internal/domain"
	"github.com/project-jobexec/board-client/internal/notify"
	"github.com/project-jobexec/board-client/internal/session"
	"github.com/project-jobexec/board-client/internal/state"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Board Client")

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cancel in-flight requests on Ctrl-C
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutdown signal received, stopping...")
		cancel()
	}()

	// Durable session storage
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Session.RedisAddr,
		Password: cfg.Session.RedisPassword,
		DB:       cfg.Session.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}
	log.Println("Redis connected")

	storage := session.NewRedisStorage(rdb, cfg.Session.KeyPrefix)
	sessions := session.NewStore(storage)
	client := api.NewClient(cfg.API.BaseURL, sessions, api.Config{
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
	})

	cache := state.NewCollections()
	notifier := notify.New(cfg.Notify.TTL)
	notifier.OnSet(func(msg notify.Message) {
		switch msg.Kind {
		case notify.KindSuccess:
			log.Printf("[notify] success: %s", msg.Text)
		default:
			log.Printf("[notify] failure: %s", msg.Text)
		}
	})

	coord := actions.NewCoordinator(client, sessions, cache, notifier)

	// Restore a persisted session, or sign in from the environment
	if err := sessions.Hydrate(ctx); err != nil {
		log.Fatalf("Session hydrate failed: %v", err)
	}

	if sessions.State() == session.StateAuthenticated {
		log.Println("Restored persisted session")
		coord.LoadCollections(ctx)
	} else {
		email := os.Getenv("BOARD_EMAIL")
		password := os.Getenv("BOARD_PASSWORD")
		role, err := domain.ParseRole(os.Getenv("BOARD_ROLE"))
		if email == "" || password == "" || err != nil {
			log.Fatalf("No session and no BOARD_EMAIL/BOARD_PASSWORD/BOARD_ROLE set")
		}
		if err := coord.Login(ctx, email, password, role); err != nil {
			log.Fatalf("Login failed: %v", err)
		}
		log.Println("Signed in")
	}

	printDashboard(ctx, client, sessions, cache)
}

func printDashboard(ctx context.Context, client *api.Client, sessions *session.Store, cache *state.Collections) {
	sess, ok := sessions.Current()
	if !ok {
		return
	}

	log.Printf("Signed in as %s (%s)", sess.User.DisplayName(), sess.User.UserRole())
	log.Printf("Collections: %d jobs, %d seekers, %d companies, %d blog posts",
		len(cache.Jobs()), len(cache.Seekers()), len(cache.Companies()), len(cache.Posts()))

	switch user := sess.User.(type) {
	case *domain.Seeker:
		log.Printf("Applied to %d jobs", len(user.AppliedJobs))
		for _, job := range cache.Jobs() {
			marker := " "
			if user.HasApplied(job.ID) {
				marker = "*"
			}
			log.Printf("  %s %s - %s (%d applicants)", marker, job.Title, job.Location, len(job.Applicants))
		}
	case *domain.Company:
		own, err := client.EmployerJobs(ctx)
		if err != nil {
			log.Printf("Failed to load own postings: %v", err)
			return
		}
		log.Printf("Company has %d postings", len(own))
		for _, job := range own {
			log.Printf("    %s - %d applicants", job.Title, len(job.Applicants))
		}
	case *domain.Admin:
		users, err := client.AdminUsers(ctx)
		if err != nil {
			log.Printf("Failed to load user list: %v", err)
			return
		}
		log.Printf("Board has %d accounts", len(users))
	}

	// Feed previews, sanitized
	sanitizer := content.NewSanitizer()
	for i, post := range cache.Posts() {
		if i >= 5 {
			break
		}
		preview, err := content.BuildPreview(&post, sanitizer)
		if err != nil {
			log.Printf("Preview failed for post %s: %v", post.ID, err)
			continue
		}
		log.Printf("  [blog] %s (%s): %s", post.AuthorName, post.AuthorRole, preview.Excerpt)
	}
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/project-jobexec/board-client/internal/api"
	"github.com/project-jobexec/board-client/internal/config"
	"github.com/project-jobexec/board-client/internal/domain"
	"github.com/project-jobexec/board-client/internal/importer"
	"github.com/project-jobexec/board-client/internal/session"
)

// jobimport scrapes an external job posting into a prefilled draft for
// the posting form. With -post it saves the draft straight to the board
// using the persisted company session.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	post := flag.Bool("post", false, "post the imported draft to the board")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: jobimport [-post] <posting-url>")
	}
	url := flag.Arg(0)

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	cfg := config.Load()

	ctx := context.Background()

	imp := importer.New(importer.Config{
		UserAgent:    cfg.Import.UserAgent,
		RequestDelay: cfg.Import.RequestDelay,
	})
	draft, err := imp.Import(ctx, url)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	out, _ := json.MarshalIndent(draft, "", "  ")
	os.Stdout.Write(append(out, '\n'))

	if !*post {
		return
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Session.RedisAddr,
		Password: cfg.Session.RedisPassword,
		DB:       cfg.Session.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}

	storage := session.NewRedisStorage(rdb, cfg.Session.KeyPrefix)
	sessions := session.NewStore(storage)
	if err := sessions.Hydrate(ctx); err != nil {
		log.Fatalf("Session hydrate failed: %v", err)
	}

	sess, ok := sessions.Current()
	if !ok {
		log.Fatalf("No persisted session; sign in with the board binary first")
	}
	if sess.User.UserRole() != domain.RoleCompany {
		log.Fatalf("Only a company account can post jobs")
	}

	client := api.NewClient(cfg.API.BaseURL, sessions, api.Config{
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
	})

	saved, err := client.SaveJob(ctx, &domain.Job{
		Title:       draft.Title,
		Location:    draft.Location,
		WorkType:    draft.WorkType,
		Description: draft.Description,
	})
	if err != nil {
		log.Fatalf("Failed to post job: %v", err)
	}
	log.Printf("Posted job %s: %s", saved.ID, saved.Title)
}

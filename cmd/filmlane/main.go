package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/filmlane/FilmLane/internal/api"
	"github.com/filmlane/FilmLane/internal/auth"
	"github.com/filmlane/FilmLane/internal/config"
	"github.com/filmlane/FilmLane/internal/db"
	"github.com/filmlane/FilmLane/internal/jobs"
	"github.com/filmlane/FilmLane/internal/repository"
	"github.com/filmlane/FilmLane/internal/scheduler"
	"github.com/filmlane/FilmLane/internal/sync"
	"github.com/filmlane/FilmLane/internal/tmdb"
	"github.com/filmlane/FilmLane/internal/version"
)

func main() {
	log.Printf("FilmLane %s starting...", version.Version)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database, "migrations"); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	cfg.ApplyOverrides(database.DB)

	settingsRepo := repository.NewSettingsRepository(database.DB)
	bootstrapAdminPassword(settingsRepo, cfg.AdminPassword)

	catalog := tmdb.NewClient(cfg.TMDBAPIKey, cfg.TMDBLanguage, cfg.TMDBRegion)
	movieRepo := repository.NewMovieRepository(database.DB)
	creditRepo := repository.NewCreditRepository(database.DB)
	syncer := sync.New(catalog, movieRepo, creditRepo)

	queue := jobs.NewQueue(cfg.RedisAddr)
	jobs.RegisterHandlers(queue, syncer)
	if err := queue.Start(context.Background()); err != nil {
		log.Fatalf("job queue failed to start: %v", err)
	}
	defer queue.Stop()

	var sched *scheduler.Scheduler
	if cfg.SyncEnabled {
		sched = scheduler.New(queue, cfg.SyncInterval)
		sched.Start()
		defer sched.Stop()
	} else {
		log.Println("sync scheduler disabled by configuration")
	}

	srv := api.NewServer(cfg, database, queue)
	httpServer := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      srv,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on :%d", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	httpServer.Shutdown(ctx)
}

// bootstrapAdminPassword hashes and stores the env-provided admin password
// on first start so login works before any settings have been edited.
func bootstrapAdminPassword(settingsRepo *repository.SettingsRepository, password string) {
	if password == "" {
		return
	}
	existing, err := settingsRepo.Get("admin_password_hash")
	if err != nil || existing != "" {
		return
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Printf("warning: could not hash admin password: %v", err)
		return
	}
	if err := settingsRepo.Set("admin_password_hash", hash); err != nil {
		log.Printf("warning: could not store admin password: %v", err)
	}
}

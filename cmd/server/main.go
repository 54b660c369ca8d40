package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"

	"github.com/essenza-parfums/web/internal/broadcast"
	"github.com/essenza-parfums/web/internal/config"
	"github.com/essenza-parfums/web/internal/content"
	"github.com/essenza-parfums/web/internal/database"
	"github.com/essenza-parfums/web/internal/domain"
	"github.com/essenza-parfums/web/internal/logging"
	"github.com/essenza-parfums/web/internal/redis"
	"github.com/essenza-parfums/web/internal/rotator"
	"github.com/essenza-parfums/web/internal/server"
	"github.com/essenza-parfums/web/internal/stats"
)

const subscriberCountTTL = 30 * time.Second

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return pool
}

func setupRedis(cfg *config.Config) *goredis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
}

// loadPage builds the page copy, preferring testimonials stored in Postgres
// over the built-in defaults. The sequence is fixed from here on.
func loadPage(ctx context.Context, source domain.TestimonialSource) content.Page {
	page := content.Default()

	panels, err := source.ListTestimonials(ctx)
	if err != nil {
		slog.Warn("Failed to load testimonials, using built-in copy", "error", err)
		return page
	}
	if len(panels) > 0 {
		page.Testimonials = panels
	}
	return page
}

func runGracefulShutdown(srv *server.Server, rot *rotator.Rotator, hub *broadcast.Hub) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		rot.Stop()
		hub.Stop()

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	pool := setupDB(cfg)
	defer pool.Close()

	redisClient := setupRedis(cfg)
	defer func() { _ = redisClient.Close() }()

	subscriberRepo := database.NewSubscriberRepo(pool)
	testimonialRepo := database.NewTestimonialRepo(pool)
	debouncer := redis.NewSignupDebouncer(redisClient)
	counts := stats.NewSubscriberCountCache(subscriberRepo, subscriberCountTTL, clock)

	loadCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	page := loadPage(loadCtx, testimonialRepo)
	cancel()

	hub := broadcast.NewHub(cfg.MaxSlideFeedClients)

	rot := rotator.New(page.Testimonials, cfg.SlideInterval, clock, hub)
	if err := rot.Start(); err != nil {
		// An empty panel sequence is a content problem, not a fatal one:
		// the page still renders, the carousel just stands still.
		slog.Warn("Slide rotator not started", "error", err)
	}

	srv, err := server.NewServer(cfg, page, hub, subscriberRepo, debouncer, counts, pool, redisClient)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	done := runGracefulShutdown(srv, rot, hub)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}

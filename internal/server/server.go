package server

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/essenza-parfums/web/internal/broadcast"
	"github.com/essenza-parfums/web/internal/config"
	"github.com/essenza-parfums/web/internal/content"
	"github.com/essenza-parfums/web/internal/domain"
	apperrors "github.com/essenza-parfums/web/internal/errors"
	"github.com/essenza-parfums/web/internal/stats"
)

type Server struct {
	echo         *echo.Echo
	config       *config.Config
	page         content.Page
	hub          *broadcast.Hub
	subscribers  domain.SubscriberRepository
	debouncer    domain.SignupDebouncer
	counts       *stats.SubscriberCountCache
	pageTemplate *template.Template
	db           *pgxpool.Pool
	redisClient  *goredis.Client
	startTime    time.Time

	// test seams for health checks
	postgresHealthCheck postgresHealthChecker
	redisHealthCheck    redisHealthChecker
}

func NewServer(
	cfg *config.Config,
	page content.Page,
	hub *broadcast.Hub,
	subscribers domain.SubscriberRepository,
	debouncer domain.SignupDebouncer,
	counts *stats.SubscriberCountCache,
	db *pgxpool.Pool,
	redisClient *goredis.Client,
) (*Server, error) {
	// Parse templates once at startup
	pageTmpl, err := template.ParseFiles("web/templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:         e,
		config:       cfg,
		page:         page,
		hub:          hub,
		subscribers:  subscribers,
		debouncer:    debouncer,
		counts:       counts,
		pageTemplate: pageTmpl,
		db:           db,
		redisClient:  redisClient,
		startTime:    time.Now(),
	}

	srv.registerRoutes()

	return srv, nil
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// renderTemplate renders into a buffer first so a template failure never
// sends partial HTML.
func renderTemplate(c echo.Context, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		slog.Error("Template execution failed", "path", c.Request().URL.Path, "error", err)
		return c.String(500, "Failed to render page")
	}
	return c.HTMLBlob(200, buf.Bytes())
}

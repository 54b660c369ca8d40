package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	apperrors "github.com/essenza-parfums/web/internal/errors"
	"github.com/essenza-parfums/web/internal/metrics"
	"github.com/essenza-parfums/web/internal/version"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The feed is public and read-only; any page may subscribe.
		return true
	},
}

func (s *Server) handleIndex(c echo.Context) error {
	subscriberCount, err := s.counts.Get(c.Request().Context())
	if err != nil {
		// The figure is decoration; render the page without it.
		slog.Warn("Failed to load subscriber count", "error", err)
		subscriberCount = 0
	}

	metrics.PageViews.Inc()

	data := map[string]any{
		"Page":            s.page,
		"SubscriberCount": subscriberCount,
		"Year":            time.Now().Year(),
	}
	return renderTemplate(c, s.pageTemplate, data)
}

func (s *Server) handleSlideFeed(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return fmt.Errorf("failed to upgrade WebSocket: %w", err)
	}

	if err := s.hub.Register(conn); err != nil {
		slog.Warn("Failed to register slide feed client", "error", err)
		return nil
	}

	// Read pump - blocks until the connection closes. Clients never send
	// anything meaningful; reading just surfaces disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.hub.Unregister(conn)

	return nil
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(200, version.Get())
}

func (s *Server) handleNotFound(c echo.Context) error {
	return apperrors.NotFoundError("page not found").
		WithContext("path", c.Request().URL.Path)
}

package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	// Landing page
	s.echo.GET("/", s.handleIndex)

	// Newsletter signup (per-IP rate limited)
	s.echo.POST("/api/newsletter", s.handleNewsletter,
		newRateLimiter(s.config.NewsletterRatePerSecond, s.config.NewsletterBurst))

	// Slide feed for the testimonial carousel
	s.echo.GET("/ws/slides", s.handleSlideFeed)

	// Everything else is a 404 in our error envelope
	s.echo.RouteNotFound("/*", s.handleNotFound)
}

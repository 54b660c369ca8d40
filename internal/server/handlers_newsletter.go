package server

import (
	"errors"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/essenza-parfums/web/internal/domain"
	apperrors "github.com/essenza-parfums/web/internal/errors"
	"github.com/essenza-parfums/web/internal/metrics"
)

const maxEmailLength = 254

func (s *Server) handleNewsletter(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))
	if err := validateEmail(email); err != nil {
		metrics.NewsletterSignups.WithLabelValues("invalid").Inc()
		return err
	}

	ctx := c.Request().Context()

	allowed, err := s.debouncer.Allow(ctx, email)
	if err != nil {
		// Fail-open: a broken debounce must not block signups. The unique
		// constraint still catches actual duplicates.
		slog.Warn("Signup debounce check failed, allowing", "error", err)
		allowed = true
	}
	if !allowed {
		metrics.NewsletterSignups.WithLabelValues("debounced").Inc()
		return apperrors.TooManyRequestsError("you just signed up, give it a minute")
	}

	sub, err := s.subscribers.Insert(ctx, email)
	if errors.Is(err, domain.ErrAlreadySubscribed) {
		metrics.NewsletterSignups.WithLabelValues("duplicate").Inc()
		return apperrors.ConflictError("this address is already subscribed")
	}
	if err != nil {
		return apperrors.InternalError("could not save subscription", err)
	}

	s.counts.Invalidate()
	metrics.NewsletterSignups.WithLabelValues("accepted").Inc()
	slog.Info("Newsletter signup", "subscriber_id", sub.ID.String())

	return c.JSON(201, map[string]string{
		"status": "subscribed",
		"id":     sub.ID.String(),
	})
}

func validateEmail(email string) error {
	if email == "" {
		return apperrors.ValidationError("email is required")
	}
	if len(email) > maxEmailLength {
		return apperrors.ValidationError("email is too long")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return apperrors.ValidationError("enter a valid email address")
	}
	return nil
}

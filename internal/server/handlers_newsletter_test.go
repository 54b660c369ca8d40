package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/essenza-parfums/web/internal/domain"
)

func postNewsletter(srv *Server, email string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("email", email)

	req := httptest.NewRequest(http.MethodPost, "/api/newsletter", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func TestHandleNewsletter_Success(t *testing.T) {
	subID := uuid.New()
	var gotEmail string
	repo := &mockSubscriberRepo{
		insertFn: func(_ context.Context, email string) (*domain.Subscriber, error) {
			gotEmail = email
			return &domain.Subscriber{ID: subID, Email: email}, nil
		},
	}
	srv := newTestServer(t, repo, &mockDebouncer{})

	rec := postNewsletter(srv, "claire@example.com")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "subscribed")
	assert.Contains(t, rec.Body.String(), subID.String())
	assert.Equal(t, "claire@example.com", gotEmail)
}

func TestHandleNewsletter_MissingEmail(t *testing.T) {
	srv := newTestServer(t, &mockSubscriberRepo{}, &mockDebouncer{})

	rec := postNewsletter(srv, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email is required")
}

func TestHandleNewsletter_InvalidEmail(t *testing.T) {
	srv := newTestServer(t, &mockSubscriberRepo{}, &mockDebouncer{})

	for _, email := range []string{"not-an-email", "a@", "with spaces@example.com"} {
		rec := postNewsletter(srv, email)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "email=%q", email)
	}
}

func TestHandleNewsletter_TooLongEmail(t *testing.T) {
	srv := newTestServer(t, &mockSubscriberRepo{}, &mockDebouncer{})

	rec := postNewsletter(srv, strings.Repeat("a", 250)+"@example.com")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "too long")
}

func TestHandleNewsletter_Duplicate(t *testing.T) {
	repo := &mockSubscriberRepo{
		insertFn: func(_ context.Context, _ string) (*domain.Subscriber, error) {
			return nil, domain.ErrAlreadySubscribed
		},
	}
	srv := newTestServer(t, repo, &mockDebouncer{})

	rec := postNewsletter(srv, "claire@example.com")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already subscribed")
}

func TestHandleNewsletter_Debounced(t *testing.T) {
	deb := &mockDebouncer{
		allowFn: func(_ context.Context, _ string) (bool, error) { return false, nil },
	}
	srv := newTestServer(t, &mockSubscriberRepo{}, deb)

	rec := postNewsletter(srv, "claire@example.com")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestHandleNewsletter_DebounceFailureIsOpen(t *testing.T) {
	deb := &mockDebouncer{
		allowFn: func(_ context.Context, _ string) (bool, error) { return false, assert.AnError },
	}
	inserted := false
	repo := &mockSubscriberRepo{
		insertFn: func(_ context.Context, email string) (*domain.Subscriber, error) {
			inserted = true
			return &domain.Subscriber{ID: uuid.New(), Email: email}, nil
		},
	}
	srv := newTestServer(t, repo, deb)

	rec := postNewsletter(srv, "claire@example.com")

	// A broken debounce lets the signup through.
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, inserted)
}

func TestHandleNewsletter_InsertFailure(t *testing.T) {
	repo := &mockSubscriberRepo{
		insertFn: func(_ context.Context, _ string) (*domain.Subscriber, error) {
			return nil, assert.AnError
		},
	}
	srv := newTestServer(t, repo, &mockDebouncer{})

	rec := postNewsletter(srv, "claire@example.com")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// The cause must not leak to the client.
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

package errors

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runThroughMiddleware(t *testing.T, handlerErr error) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Middleware()
	err := mw(func(echo.Context) error { return handlerErr })(c)
	return rec, err
}

func TestMiddleware_NoError(t *testing.T) {
	rec, err := runThroughMiddleware(t, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddleware_StructuredError(t *testing.T) {
	rec, err := runThroughMiddleware(t, ConflictError("already subscribed"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already subscribed")
	assert.Contains(t, rec.Body.String(), string(TypeConflict))
}

func TestMiddleware_PlainErrorBecomesInternal(t *testing.T) {
	rec, err := runThroughMiddleware(t, stderrors.New("secret database detail"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
	assert.NotContains(t, rec.Body.String(), "secret database detail")
}

func TestMiddleware_EchoHTTPErrorPassesThrough(t *testing.T) {
	httpErr := echo.NewHTTPError(http.StatusTeapot, "teapot")
	_, err := runThroughMiddleware(t, httpErr)

	// Echo errors are left for Echo's own error handler.
	require.Error(t, err)
	var got *echo.HTTPError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, http.StatusTeapot, got.Code)
}

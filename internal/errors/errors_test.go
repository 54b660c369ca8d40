package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{ValidationError("bad input"), http.StatusBadRequest},
		{NotFoundError("missing"), http.StatusNotFound},
		{ConflictError("duplicate"), http.StatusConflict},
		{TooManyRequestsError("slow down"), http.StatusTooManyRequests},
		{InternalError("boom", nil), http.StatusInternalServerError},
		{ExternalError("upstream", nil), http.StatusBadGateway},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.HTTPStatus(), "type=%s", tt.err.Type)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := InternalError("wrapper", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "underlying")
	assert.Contains(t, err.Error(), "wrapper")
}

func TestError_WithContext(t *testing.T) {
	err := ValidationError("bad email").WithContext("field", "email")

	require.Contains(t, err.Context, "field")
	assert.Equal(t, "email", err.Context["field"])
}

func TestToResponse_OmitsCause(t *testing.T) {
	err := InternalError("internal server error", stderrors.New("secret detail"))

	resp := err.ToResponse()
	assert.Equal(t, "internal server error", resp.Error)
	assert.Equal(t, TypeInternal, resp.Type)
}

func TestAsStructuredError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, AsStructuredError(nil))
	})

	t.Run("structured error passes through", func(t *testing.T) {
		original := ConflictError("duplicate")
		assert.Same(t, original, AsStructuredError(original))
	})

	t.Run("wrapped structured error is unwrapped", func(t *testing.T) {
		original := NotFoundError("missing")
		wrapped := stderrors.Join(original)
		assert.Same(t, original, AsStructuredError(wrapped))
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		err := AsStructuredError(stderrors.New("plain"))
		require.NotNil(t, err)
		assert.Equal(t, TypeInternal, err.Type)
		assert.Equal(t, "internal server error", err.Message)
	})
}

package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailgate/internal"
)

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("direct HTTPError", func(t *testing.T) {
		t.Parallel()
		httpErr := internal.NewHTTPError(http.StatusNotFound, "not found")
		got := internal.AsHTTPError(httpErr)
		require.NotNil(t, got)
		require.Equal(t, http.StatusNotFound, got.Code)
		require.Equal(t, "not found", got.Message)
	})

	t.Run("wrapped HTTPError preserves fields", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("cause")
		httpErr := internal.ErrUnauthorized("unauthorized",
			internal.WithErrorCode("AUTH_001"),
			internal.WithError(cause),
		)
		err := fmt.Errorf("middleware: %w", httpErr)

		got := internal.AsHTTPError(err)
		require.NotNil(t, got)
		require.Equal(t, http.StatusUnauthorized, got.Code)
		require.Equal(t, "AUTH_001", got.ErrorCode)
		require.ErrorIs(t, err, cause)
	})

	t.Run("unrelated error returns nil", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, internal.AsHTTPError(errors.New("plain error")))
	})

	t.Run("nil returns nil", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, internal.AsHTTPError(nil))
	})
}

func TestHTTPError_Methods(t *testing.T) {
	t.Parallel()

	err := internal.ErrInternal("boom")
	require.Equal(t, "boom", err.Error())
	require.Equal(t, http.StatusInternalServerError, err.StatusCode())
	require.Equal(t, "Internal Server Error", err.StatusText())
	require.Equal(t, http.StatusBadRequest, internal.ErrBadRequest("bad").Code)
	require.Equal(t, http.StatusNotFound, internal.ErrNotFound("missing").Code)
	require.Equal(t, http.StatusMethodNotAllowed, internal.ErrMethodNotAllowed("nope").Code)
}

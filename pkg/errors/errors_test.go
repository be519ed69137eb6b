package errors_test

import (
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "dogroom/pkg/errors"
)

func TestConstructorsStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperrors.AppError
		code   string
		status int
	}{
		{"not found", apperrors.NotFound("host"), apperrors.CodeNotFound, http.StatusNotFound},
		{"already exists", apperrors.AlreadyExists("booking", "b1"), apperrors.CodeAlreadyExists, http.StatusConflict},
		{"validation", apperrors.Validation("bad input", nil), apperrors.CodeValidation, http.StatusUnprocessableEntity},
		{"invalid input", apperrors.InvalidInput("empty id"), apperrors.CodeInvalidInput, http.StatusBadRequest},
		{"invalid range", apperrors.InvalidRange("from must precede to"), apperrors.CodeInvalidRange, http.StatusBadRequest},
		{"conflict", apperrors.Conflict("dates taken"), apperrors.CodeConflict, http.StatusConflict},
		{"storage", apperrors.Storage("db down", io.EOF), apperrors.CodeStorage, http.StatusServiceUnavailable},
		{"internal", apperrors.Internal("boom", io.EOF), apperrors.CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.code, tt.err.Code)
			require.Equal(t, tt.status, tt.err.HTTPStatus)
			require.True(t, apperrors.IsCode(tt.err, tt.code))
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	err := apperrors.Storage("read failed", cause)
	require.True(t, errors.Is(err, cause))
	require.Contains(t, err.Error(), "STORAGE_UNAVAILABLE")
	require.Contains(t, err.Error(), "caused by")
}

func TestAsAppError(t *testing.T) {
	appErr := apperrors.NotFound("user")
	require.Same(t, appErr, apperrors.AsAppError(appErr))

	wrapped := apperrors.AsAppError(io.EOF)
	require.Equal(t, apperrors.CodeInternal, wrapped.Code)
	require.True(t, errors.Is(wrapped, io.EOF))
}

func TestIsCode(t *testing.T) {
	require.False(t, apperrors.IsCode(nil, apperrors.CodeNotFound))
	require.False(t, apperrors.IsCode(io.EOF, apperrors.CodeNotFound))
	require.False(t, apperrors.IsCode(apperrors.Conflict("x"), apperrors.CodeNotFound))
}

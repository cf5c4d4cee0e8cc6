package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	e := NewAppError(http.StatusBadRequest, CodeValidation, "bad input", nil)
	assert.Equal(t, "bad input", e.Error())

	wrapped := NewAppError(http.StatusBadRequest, CodeValidation, "bad input", errors.New("inner"))
	assert.Equal(t, "inner", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	e := NotFound("user missing")
	assert.ErrorIs(t, e, ErrNotFound)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		status int
		code   string
	}{
		{"not found", NotFound("x"), http.StatusNotFound, CodeNotFound},
		{"bad request", BadRequest("x"), http.StatusBadRequest, CodeValidation},
		{"invalid state", InvalidState("x", ErrUserNotDeleted), http.StatusConflict, CodeInvalidState},
		{"unauthorized", Unauthorized("x"), http.StatusUnauthorized, CodeUnauthorized},
		{"forbidden", Forbidden("x"), http.StatusForbidden, CodeForbidden},
		{"internal", InternalError(errors.New("x")), http.StatusInternalServerError, CodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestInvalidState_WrapsSentinel(t *testing.T) {
	e := InvalidState("cannot restore", ErrUserNotDeleted)
	assert.ErrorIs(t, e, ErrUserNotDeleted)
}

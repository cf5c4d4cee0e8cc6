package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainerrors "harvest-admin.backend/internal/domain/errors"
)

func performError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	Error(c, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestError_AppErrorKeepsStatusAndCode(t *testing.T) {
	rec, body := performError(t, domainerrors.InvalidState("user is not deleted", domainerrors.ErrUserNotDeleted))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domainerrors.CodeInvalidState, body["code"])
	assert.Equal(t, "user is not deleted", body["message"])
}

func TestError_SentinelNotFound(t *testing.T) {
	rec, body := performError(t, domainerrors.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerrors.CodeNotFound, body["code"])
}

func TestError_UnknownErrorIs500(t *testing.T) {
	rec, body := performError(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, domainerrors.CodeInternalError, body["code"])
	// internal details never leak to the client
	assert.Equal(t, "internal server error", body["message"])
}

func TestSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	Success(c, http.StatusCreated, gin.H{"ok": true})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

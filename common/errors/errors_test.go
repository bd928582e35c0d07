package errors

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsSentinelIntact(t *testing.T) {
	cause := stderrors.New("connection refused")
	wrapped := Wrap(ErrDatabaseQuery, cause)

	assert.Nil(t, ErrDatabaseQuery.Err)
	assert.True(t, stderrors.Is(wrapped, ErrDatabaseQuery))
	assert.True(t, stderrors.Is(wrapped, cause))
	assert.Equal(t, "Database query error: connection refused", wrapped.Error())
}

func TestWithfChangesMessage(t *testing.T) {
	err := Withf(ErrInvalidInput, "bad id %d", 7)
	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Equal(t, "bad id 7", err.Message)
	assert.False(t, stderrors.Is(err, ErrInvalidInput))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(Wrap(ErrNotFound, nil)))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(stderrors.New("boom")))
}

func TestErrorMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorMiddleware())
	r.GET("/app", func(c *gin.Context) { _ = c.Error(ErrForbidden) })
	r.GET("/foreign", func(c *gin.Context) { _ = c.Error(stderrors.New("boom")) })
	r.GET("/written", func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{})
		_ = c.Error(ErrForbidden)
	})

	tests := []struct {
		path string
		code int
		body string
	}{
		{"/app", http.StatusForbidden, `{"error":"Forbidden"}`},
		{"/foreign", http.StatusInternalServerError, `{"error":"Internal server error"}`},
		{"/written", http.StatusTeapot, `{}`},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.code, w.Code, tt.path)
		assert.JSONEq(t, tt.body, w.Body.String(), tt.path)
	}
}

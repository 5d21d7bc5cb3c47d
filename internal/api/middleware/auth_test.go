package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	var gotUserID int64
	var gotAdmin bool

	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		gotUserID = id
		gotAdmin = IsAdmin(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/calendar/gestures", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid user id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/calendar/gestures", nil)
		req.Header.Set("X-User-ID", "abc")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid user without role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/calendar/gestures", nil)
		req.Header.Set("X-User-ID", "42")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(42), gotUserID)
		assert.False(t, gotAdmin)
	})

	t.Run("admin role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/calendar/gestures", nil)
		req.Header.Set("X-User-ID", "42")
		req.Header.Set("X-User-Role", RoleAdmin)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gotAdmin)
	})
}

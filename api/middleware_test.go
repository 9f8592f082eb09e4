package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func userIDRecorder() (http.Handler, *string) {
	var gotUserID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		gotUserID = userID
		w.WriteHeader(http.StatusOK)
	})
	return handler, &gotUserID
}

func TestAuthenticateRequiresBearerToken(t *testing.T) {
	m := newAuthMiddleware("")
	next, _ := userIDRecorder()

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"empty bearer", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/sources", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			m.authenticate(next).ServeHTTP(w, r)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthenticateWithoutSecretUsesBearerAsUserID(t *testing.T) {
	m := newAuthMiddleware("")
	next, gotUserID := userIDRecorder()

	r := httptest.NewRequest(http.MethodGet, "/sources", nil)
	r.Header.Set("Authorization", "Bearer user-42")
	w := httptest.NewRecorder()

	m.authenticate(next).ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", *gotUserID)
}

func TestAuthenticateValidatesJWT(t *testing.T) {
	const secret = "test-secret"
	m := newAuthMiddleware(secret)

	t.Run("valid token", func(t *testing.T) {
		next, gotUserID := userIDRecorder()
		token := signToken(t, secret, jwt.MapClaims{
			"sub": "user-42",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		r := httptest.NewRequest(http.MethodGet, "/sources", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		m.authenticate(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-42", *gotUserID)
	})

	t.Run("expired token", func(t *testing.T) {
		next, _ := userIDRecorder()
		token := signToken(t, secret, jwt.MapClaims{
			"sub": "user-42",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		r := httptest.NewRequest(http.MethodGet, "/sources", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		m.authenticate(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		next, _ := userIDRecorder()
		token := signToken(t, "other-secret", jwt.MapClaims{"sub": "user-42"})

		r := httptest.NewRequest(http.MethodGet, "/sources", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		m.authenticate(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing subject", func(t *testing.T) {
		next, _ := userIDRecorder()
		token := signToken(t, secret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		r := httptest.NewRequest(http.MethodGet, "/sources", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		m.authenticate(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("opaque token rejected when secret is set", func(t *testing.T) {
		next, _ := userIDRecorder()

		r := httptest.NewRequest(http.MethodGet, "/sources", nil)
		r.Header.Set("Authorization", "Bearer user-42")
		w := httptest.NewRecorder()

		m.authenticate(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

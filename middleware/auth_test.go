package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dosada05/esports-db/models"
	"github.com/Dosada05/esports-db/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenRepo struct {
	users map[string]*models.User
}

func (f *fakeTokenRepo) GetOrCreate(_ context.Context, userID int, newKey string) (*models.AuthToken, error) {
	return &models.AuthToken{Key: newKey, UserID: userID}, nil
}

func (f *fakeTokenRepo) GetUserByKey(_ context.Context, key string) (*models.User, error) {
	user, ok := f.users[key]
	if !ok {
		return nil, repositories.ErrTokenNotFound
	}
	return user, nil
}

func (f *fakeTokenRepo) DeleteByUser(_ context.Context, userID int) error { return nil }

func TestTokenFromHeader(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Token abc123", "abc123", true},
		{"Bearer abc123", "abc123", true},
		{"token abc123", "abc123", true},
		{"Basic abc123", "", false},
		{"Token ", "", false},
		{"abc123", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, ok := tokenFromHeader(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	active := &models.User{ID: 1, Username: "alice", IsActive: true}
	disabled := &models.User{ID: 2, Username: "bob", IsActive: false}
	auth := NewAuthenticator(&fakeTokenRepo{users: map[string]*models.User{
		"goodkey": active,
		"oldkey":  disabled,
	}})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := UserFromContext(r.Context()); ok {
			w.Header().Set("X-User", user.Username)
		}
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token resolves user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token goodkey")
		rec := httptest.NewRecorder()

		auth.Authenticate(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice", rec.Header().Get("X-User"))
	})

	t.Run("anonymous passes through without user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		auth.Authenticate(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-User"))
	})

	t.Run("unknown token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token badkey")
		rec := httptest.NewRecorder()

		auth.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("disabled account rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token oldkey")
		rec := httptest.NewRecorder()

		auth.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireStaff(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("staff allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req = req.WithContext(WithUser(req.Context(), &models.User{ID: 1, IsStaff: true, IsActive: true}))
		rec := httptest.NewRecorder()

		RequireStaff(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-staff forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req = req.WithContext(WithUser(req.Context(), &models.User{ID: 2, IsActive: true}))
		rec := httptest.NewRecorder()

		RequireStaff(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("anonymous unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()

		RequireStaff(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

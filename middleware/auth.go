package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Dosada05/esports-db/models"
	"github.com/Dosada05/esports-db/repositories"
)

type contextKey string

const userContextKey contextKey = "user"

// Authenticator резолвит токен из заголовка Authorization в пользователя.
// Поддерживаются схемы "Token <key>" и "Bearer <key>".
type Authenticator struct {
	tokenRepo repositories.TokenRepository
}

func NewAuthenticator(tokenRepo repositories.TokenRepository) *Authenticator {
	return &Authenticator{tokenRepo: tokenRepo}
}

// Authenticate кладёт пользователя в контекст запроса, если предъявлен
// действующий токен. Анонимные запросы проходят дальше — доступ
// ограничивают RequireUser и RequireStaff на конкретных маршрутах.
func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, ok := tokenFromHeader(r.Header.Get("Authorization"))
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		user, err := a.tokenRepo.GetUserByKey(r.Context(), key)
		if err != nil {
			if errors.Is(err, repositories.ErrTokenNotFound) {
				writeAuthError(w, http.StatusUnauthorized, "invalid authentication token")
				return
			}
			writeAuthError(w, http.StatusInternalServerError, "could not verify authentication token")
			return
		}
		if !user.IsActive {
			writeAuthError(w, http.StatusUnauthorized, "user account is disabled")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// RequireUser пропускает только аутентифицированные запросы.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			writeAuthError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireStaff пропускает только персонал. Ставится после RequireUser.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			writeAuthError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !user.IsStaff {
			writeAuthError(w, http.StatusForbidden, "staff access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithUser кладёт пользователя в контекст запроса.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}

func tokenFromHeader(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	scheme := strings.ToLower(parts[0])
	if scheme != "token" && scheme != "bearer" {
		return "", false
	}
	key := strings.TrimSpace(parts[1])
	return key, key != ""
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}` + "\n"))
}

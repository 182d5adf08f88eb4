package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/wedding-composer/internal/api/handlers"
)

// UserIDHeader заголовок с ID пользователя, проставляемый gateway
const UserIDHeader = "X-User-ID"

type ctxKey int

const (
	userIDKey ctxKey = iota
	requestIDKey
)

const (
	msgMissingUserID = "missing X-User-ID header"
	msgInvalidUserID = "invalid X-User-ID header"
)

// Auth требует корректный X-User-ID и кладёт его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, ok := parseUserID(raw)
		if !ok {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// OptionalAuth кладёт X-User-ID в контекст, если он передан.
// Некорректное значение отклоняется так же, как в Auth.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := parseUserID(raw)
		if !ok {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// OptionalUserID ID пользователя или nil для анонимного запроса
func OptionalUserID(ctx context.Context) *int64 {
	userID, ok := GetUserID(ctx)
	if !ok {
		return nil
	}
	return &userID
}

func parseUserID(raw string) (int64, bool) {
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, false
	}
	return userID, true
}

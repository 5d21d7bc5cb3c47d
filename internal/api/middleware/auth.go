package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
)

// RoleAdmin роль, открывающая путь перенос/ресайз в календаре
const RoleAdmin = "admin"

// Auth middleware аутентификации: требует заголовок X-User-ID,
// опциональный X-User-Role кладет в контекст для гейтинга редактирования
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, "X-User-ID header is required")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "X-User-ID header is invalid")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, r.Header.Get("X-User-Role"))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя из контекста запроса
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// IsAdmin возвращает true, если запрос пришел с ролью администратора
func IsAdmin(ctx context.Context) bool {
	role, ok := ctx.Value(userRoleKey).(string)
	return ok && role == RoleAdmin
}

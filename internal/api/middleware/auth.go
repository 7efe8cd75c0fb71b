package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-DefenseService/internal/api/handlers"
)

// AdminTokenHeader заголовок с административным токеном
const AdminTokenHeader = "X-Admin-Token"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth проверяет административный токен из заголовка.
// Это транспортная защита, а не система аутентификации: токен один и
// задается в конфигурации.
func AdminAuth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminTokenHeader)
			if got == "" {
				logger.Warn("%s %s - Missing admin token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "admin token required")
				return
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				logger.Warn("%s %s - Invalid admin token", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, "invalid admin token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

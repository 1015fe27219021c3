package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
)

// UserIDHeader заголовок с ID пользователя, проставляется API gateway
const UserIDHeader = "X-User-ID"

// Auth проверяет наличие заголовка X-User-ID на защищенных маршрутах.
// Сама аутентификация выполняется снаружи (gateway), здесь только
// отсечение анонимных запросов.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(UserIDHeader) == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
			return
		}
		next.ServeHTTP(w, r)
	})
}

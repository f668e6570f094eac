// Package middleware содержит HTTP middleware: аутентификацию по заголовку,
// идентификаторы запросов и сбор метрик.
package middleware

import (
	"net/http"
	"strconv"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
)

const (
	headerUserID = "X-User-ID"

	msgMissingUserID = "falta el encabezado X-User-ID"
	msgInvalidUserID = "encabezado X-User-ID invalido"
)

// Auth проверяет наличие заголовка X-User-ID и кладет ID в контекст.
// Аутентификация делегирована шлюзу университета, сервис доверяет заголовку.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(headerUserID)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidUserID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// Package middleware holds the HTTP middleware of the API.
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fablab-portal/SchedulingService/internal/api/handlers"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// Auth requires the X-User-ID header set by the portal gateway after token
// verification and stores the caller's id in the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing X-User-ID header")
			return
		}
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "invalid X-User-ID header")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the authenticated caller's id, 0 when absent.
func UserIDFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}

package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/bookkeeper/internal/server/auth"
	"github.com/dmitrijs2005/bookkeeper/internal/server/users"
)

type ctxKey string

const (
	userIDKey ctxKey = "userID"
	roleKey   ctxKey = "role"
)

// UserIDFromContext returns the authenticated user ID placed on the request
// context by the admin gate.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// adminOnly guards mutating routes. It extracts the session cookie,
// verifies the token, and requires the admin role before invoking next.
//
// Every failure — missing cookie, malformed or expired token, wrong role —
// produces the identical 403 response. The sub-cases are deliberately not
// distinguishable from the outside, so a probing client learns nothing
// about which check failed. The gate performs no I/O: the store is never
// touched before authorization succeeds.
func (s *Server) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		token, ok := auth.ExtractToken(r)
		if !ok {
			s.rejectUnauthorized(w, r, "no session cookie")
			return
		}

		userID, role, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			s.rejectUnauthorized(w, r, err.Error())
			return
		}

		if role != users.RoleAdmin {
			s.rejectUnauthorized(w, r, "role is not admin")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, roleKey, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// rejectUnauthorized writes the uniform gate rejection. The reason is for
// the server log only and never reaches the client.
func (s *Server) rejectUnauthorized(w http.ResponseWriter, r *http.Request, reason string) {
	s.logger.Warn(r.Context(), "rejected privileged request", "path", r.URL.Path, "reason", reason)
	http.Error(w, "Unauthorized", http.StatusForbidden)
}

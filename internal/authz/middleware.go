package authz

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/skillsenhance/skillsenhance/internal/platform/httpx"
	"github.com/skillsenhance/skillsenhance/internal/shared"
)

// Middleware wires authorization helpers for HTTP handlers. Permission
// checks run against the user's snapshot in the store, so they see exactly
// what the active role saw when it was last set.
type Middleware struct {
	Store  *Store
	Logger *slog.Logger
}

// RequirePermission rejects requests whose session user lacks the
// capability: 401 without a bound session user, 403 without the grant.
func (m Middleware) RequirePermission(c Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := m.currentUserID(r)
			if !ok {
				httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "login required")
				return
			}
			if !m.Store.UserHasPermission(userID, c) {
				httpx.Problem(w, http.StatusForbidden, "Forbidden", "missing permission: "+string(c))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser rejects requests without a bound session user. The handler
// does its own finer-grained checks.
func (m Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := m.currentUserID(r); !ok {
			httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "login required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m Middleware) currentUserID(r *http.Request) (string, bool) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		return "", false
	}
	id := strings.TrimSpace(sess.User())
	if id == "" {
		return "", false
	}
	if _, err := m.Store.UserByID(id); err != nil {
		if m.Logger != nil {
			m.Logger.Warn("session bound to unknown user", slog.String("user_id", id))
		}
		return "", false
	}
	return id, true
}

// SessionUserID resolves the requesting user id from the session, for
// handlers that scope results to the caller.
func (m Middleware) SessionUserID(r *http.Request) (string, bool) {
	return m.currentUserID(r)
}

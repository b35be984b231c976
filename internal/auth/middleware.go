package auth

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/filmlane/FilmLane/internal/httputil"
)

type Middleware struct {
	db *sql.DB
}

func NewMiddleware(db *sql.DB) *Middleware {
	return &Middleware{db: db}
}

// RequireAuth validates the bearer session token against the sessions
// table and drops expired sessions on sight.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			httputil.WriteError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var exp int64
		err := m.db.QueryRow(
			"SELECT expires_at FROM sessions WHERE token = $1", token,
		).Scan(&exp)
		if err != nil {
			httputil.WriteError(w, http.StatusUnauthorized, "invalid session")
			return
		}

		if IsTokenExpired(exp) {
			m.db.Exec("DELETE FROM sessions WHERE token = $1", token)
			httputil.WriteError(w, http.StatusUnauthorized, "session expired")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get("token")
}

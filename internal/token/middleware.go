package token

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Marco16005/pag-web-web/internal/respond"
)

// RequireRole rejects requests without a valid bearer token for role.
// With a nil Service it lets every request through.
func RequireRole(s *Service, role string, logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !s.Enabled() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if len(auth) < 7 || !strings.EqualFold(auth[:7], "bearer ") {
				respond.Message(w, http.StatusUnauthorized, "Authentication required.")
				return
			}
			claims, err := s.Parse(strings.TrimSpace(auth[7:]))
			if err != nil {
				logger.Debugw("rejected token", "path", r.URL.Path, "err", err)
				respond.Message(w, http.StatusUnauthorized, "Invalid or expired token.")
				return
			}
			if claims.Role != role {
				respond.Message(w, http.StatusForbidden, "Administrator access required.")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/heartmarshall/facts-mng/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (ctxutil.Identity, error)
}

// Auth resolves the bearer token into a caller identity. Requests without a
// token pass through anonymously and are rejected by the operations that
// need a caller.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			id, err := validator.ValidateToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithIdentity(r.Context(), id)))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// writeError writes the {code, message} envelope used by the REST layer.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"code": code, "message": message})
}

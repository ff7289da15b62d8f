package mw

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/curator/internal/logger"
)

// TokenValidator checks an admin bearer token.
type TokenValidator interface {
	Validate(token string) error
}

// RequireAdmin rejects requests without a valid "Authorization: Bearer" token.
func RequireAdmin(tokens TokenValidator, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer realm="curator-admin"`)
				writeError(w, http.StatusUnauthorized, "missing admin token")
				return
			}
			if err := tokens.Validate(token); err != nil {
				log.Debug("admin token rejected", logger.Error(err))
				w.Header().Set("WWW-Authenticate", `Bearer realm="curator-admin", error="invalid_token"`)
				writeError(w, http.StatusUnauthorized, "invalid admin token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

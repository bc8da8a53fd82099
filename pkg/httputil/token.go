package httputil

import (
	"errors"
	"net/http"
	"strings"
)

// GetTokenFromRequest extracts a bearer token from the Authorization header,
// falling back to the "token" query parameter that browser websocket
// clients have to use.
func GetTokenFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Support "Bearer <token>" format
		if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			token = strings.TrimSpace(token)
			if token != "" {
				return token, nil
			}
			return "", errors.New("empty bearer token")
		}
		return authHeader, nil
	}

	if token := r.URL.Query().Get("token"); token != "" {
		return token, nil
	}

	return "", errors.New("no auth token found in header or query")
}

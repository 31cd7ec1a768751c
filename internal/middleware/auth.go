package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/zhouzirui/folio/backend/pkg/utils"
)

// BearerToken 要求请求携带 "Authorization: Bearer <token>"。token 为空时拒绝所有请求。
func BearerToken(token string) func(http.Handler) http.Handler {
	expected := []byte(strings.TrimSpace(token))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := parseAuthorizationToken(r.Header.Get("Authorization"))
			if len(expected) == 0 || got == "" || subtle.ConstantTimeCompare([]byte(got), expected) != 1 {
				w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
				utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func parseAuthorizationToken(header string) string {
	header = strings.TrimSpace(header)
	if strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

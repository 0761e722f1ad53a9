package http

import (
	"net/http"
	"strings"

	"github.com/visionffe/visionffe-api/internal/domain"
)

// Identity headers asserted by the fronting gateway.
const (
	HeaderUserID      = "X-Auth-User-Id"
	HeaderRoles       = "X-Auth-Roles"
	HeaderPermissions = "X-Auth-Permissions"
)

// Authenticate attaches the gateway asserted principal to the request context.
// Requests without a user id pass through anonymous and are rejected by the use cases.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if userID == "" {
			next.ServeHTTP(w, r)
			return
		}

		principal := domain.Principal{
			UserID: userID,
			Roles:  splitHeader(r.Header.Get(HeaderRoles)),
		}
		for _, p := range splitHeader(r.Header.Get(HeaderPermissions)) {
			principal.Permissions = append(principal.Permissions, domain.Permission(p))
		}

		next.ServeHTTP(w, r.WithContext(domain.WithPrincipal(r.Context(), principal)))
	})
}

func splitHeader(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const credentialKey contextKey = "credential"

// BearerCredential copies the Authorization bearer token of an HTTP request
// into its context. Requests without one go through untouched, operations
// that need an identity reject them later.
func BearerCredential(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
			r = r.WithContext(context.WithValue(r.Context(), credentialKey, token))
		}
		next.ServeHTTP(w, r)
	})
}

func CredentialFromContext(ctx context.Context) (string, bool) {
	credential, ok := ctx.Value(credentialKey).(string)
	return credential, ok
}

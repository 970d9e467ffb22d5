package auth

import (
	"context"
	"net/http"
)

const isAdminKey contextKey = "is_admin"

// WithIsAdmin stores the admin flag in the context.
func WithIsAdmin(ctx context.Context, isAdmin bool) context.Context {
	return context.WithValue(ctx, isAdminKey, isAdmin)
}

// IsAdminFromContext returns whether the authenticated user is an admin.
// Returns false when not set.
func IsAdminFromContext(ctx context.Context) bool {
	v, _ := ctx.Value(isAdminKey).(bool)
	return v
}

// EmailLookup resolves an authenticated user ID to an email address.
type EmailLookup func(ctx context.Context, userID string) (string, error)

// AdminFlag marks requests whose user email is in the allow list.
// Must run after RequireAuth; requests without a userID pass through unmarked.
func AdminFlag(lookup EmailLookup, adminEmails []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(adminEmails))
	for _, e := range adminEmails {
		allowed[e] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if userID, ok := UserIDFromContext(ctx); ok {
				if email, err := lookup(ctx, userID); err == nil && allowed[email] {
					ctx = WithIsAdmin(ctx, true)
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

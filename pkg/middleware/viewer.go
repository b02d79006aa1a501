package middleware

import (
	"context"
	"net/http"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ViewerKey is the context key for the selected viewer (friend) id
	ViewerKey ContextKey = "viewer_id"
)

// Viewer reads the X-Viewer-ID header and stores it in the request
// context. The trip ledger has no accounts: the header just says which
// friend the client is browsing as, so reports can phrase balances from
// their point of view. Requests without the header stay anonymous.
func Viewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if viewerID := r.Header.Get("X-Viewer-ID"); viewerID != "" {
			ctx := context.WithValue(r.Context(), ViewerKey, viewerID)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ViewerID extracts the selected viewer id from the request context
func ViewerID(ctx context.Context) (string, bool) {
	viewerID, ok := ctx.Value(ViewerKey).(string)
	return viewerID, ok
}

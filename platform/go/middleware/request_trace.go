package middleware

import (
	"context"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/zenGate-Global/yt-http-gateway/platform/go/requesttrace"
)

// RequestTrace resolves the request id, stores it where chimw.GetReqID finds
// it, and echoes it on the response and on the request forwarded upstream.
// It replaces chimw.RequestID and must run before the request logger.
func RequestTrace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := requesttrace.FromHeader(r.Header.Get(requesttrace.Header))

		r.Header.Set(requesttrace.Header, id)
		w.Header().Set(requesttrace.Header, id)

		ctx := context.WithValue(r.Context(), chimw.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/report-deck/pkg/models/domain"
)

// Session resolves the {session} route parameter into a typed session
// on the request context and stamps it on the request logger.
func Session() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			id := chi.URLParam(req, "session")
			if id == "" {
				http.NotFound(w, req)
				return
			}

			ctx := req.Context()
			reqLogger := zerolog.Ctx(ctx).With().Str("session", id).Logger()
			ctx = reqLogger.WithContext(ctx)
			ctx = domain.WithSession(ctx, domain.Session{ID: id})

			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

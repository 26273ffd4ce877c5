package domain

import "context"

// Session identifies one viewer session. Every uploaded or downloaded
// report lives under the session's directory, and all report
// operations are scoped to it.
type Session struct {
	ID string
}

type sessionCtxKey struct{}

// WithSession returns a child context carrying the session.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// SessionFromContext extracts the session placed by WithSession. The
// second return reports whether one was present.
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(Session)
	return s, ok
}

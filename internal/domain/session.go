package domain

import "context"

// Session identifies the operator behind a request and carries the bearer
// token forwarded to the membership API.
type Session struct {
	OperatorID string
	Name       string
	Role       string
	Token      string
}

type sessionKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}

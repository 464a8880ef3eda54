package model

import (
	"context"

	"campusvisit/shared/constant"
)

// holder lets a handler swap the request's session (login, logout) and the
// middleware still persist the one that ends up in it.
type holder struct {
	session *Session
}

func NewContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, constant.ContextKeySession, &holder{session: sess})
}

// FromContext returns the request's session, or a throwaway logged-out one outside the middleware.
func FromContext(ctx context.Context) *Session {
	h, ok := ctx.Value(constant.ContextKeySession).(*holder)
	if !ok || h.session == nil {
		return &Session{}
	}

	return h.session
}

func Replace(ctx context.Context, sess *Session) {
	if h, ok := ctx.Value(constant.ContextKeySession).(*holder); ok {
		h.session = sess
	}
}

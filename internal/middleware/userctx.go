package middleware

import "context"

type userKey struct{}

// userSlot lets outer middleware read the username set further down the chain.
type userSlot struct{ username string }

type userSlotKey struct{}

func WithUsername(ctx context.Context, username string) context.Context {
	if s, ok := ctx.Value(userSlotKey{}).(*userSlot); ok {
		s.username = username
	}
	return context.WithValue(ctx, userKey{}, username)
}

// Username returns the authenticated username, if the request passed the auth gate.
func Username(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userKey{}).(string)
	return v, ok && v != ""
}

func withUserSlot(ctx context.Context) (context.Context, *userSlot) {
	s := &userSlot{}
	return context.WithValue(ctx, userSlotKey{}, s), s
}

package auth

import (
	"context"
)

// Context keys for authentication data
type contextKey string

const (
	// ContextKeyWalletAddress is the context key for the wallet proven by signature
	ContextKeyWalletAddress contextKey = "wallet_address"
	// ContextKeySubject is the context key for the bearer token subject
	ContextKeySubject contextKey = "subject"
)

// WithWalletAddress adds the wallet address to the context
func WithWalletAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, ContextKeyWalletAddress, address)
}

// WalletAddressFromContext retrieves the wallet address from the context
func WalletAddressFromContext(ctx context.Context) (string, bool) {
	addr, ok := ctx.Value(ContextKeyWalletAddress).(string)
	return addr, ok
}

// WithSubject adds the bearer token subject to the context
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, ContextKeySubject, subject)
}

// SubjectFromContext retrieves the bearer token subject from the context
func SubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(ContextKeySubject).(string)
	return sub, ok
}

package middleware

import (
	"context"

	"github.com/razorsharp/storefront-backend/internal/profiles"
	pkgauth "github.com/razorsharp/storefront-backend/pkg/auth"
)

type contextKey string

const (
	ctxClaims  contextKey = "identity_claims"
	ctxProfile contextKey = "profile"
)

// ClaimsFromContext returns the verified identity claims, or nil outside the
// auth chain.
func ClaimsFromContext(ctx context.Context) *pkgauth.IdentityClaims {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxClaims).(*pkgauth.IdentityClaims); ok {
		return v
	}
	return nil
}

// ProfileFromContext returns the authenticated caller's profile. It is nil
// when the token verified but no profile has been provisioned yet.
func ProfileFromContext(ctx context.Context) *profiles.ProfileDTO {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxProfile).(*profiles.ProfileDTO); ok {
		return v
	}
	return nil
}

// WithClaims injects verified claims into the context.
func WithClaims(ctx context.Context, claims *pkgauth.IdentityClaims) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxClaims, claims)
}

// WithProfile injects the caller's profile into the context.
func WithProfile(ctx context.Context, profile *profiles.ProfileDTO) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxProfile, profile)
}

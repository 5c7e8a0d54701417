package graph

import (
	"context"

	errorHandler "movie_ratings_api/pkg/error"
	"movie_ratings_api/pkg/response"
	"movie_ratings_api/util"
)

type contextKey int

const userContextKey contextKey = iota

// WithUser attaches the authenticated identity to the request context. A nil
// claims value is valid and means anonymous.
func WithUser(ctx context.Context, claims *util.AuthClaims) context.Context {
	return context.WithValue(ctx, userContextKey, claims)
}

// UserFrom returns the authenticated identity, or nil for anonymous requests.
func UserFrom(ctx context.Context) *util.AuthClaims {
	claims, _ := ctx.Value(userContextKey).(*util.AuthClaims)
	return claims
}

// requireUser is the explicit capability check at the top of operations that
// need identity. The gate never rejects, this is where rejection happens.
func requireUser(ctx context.Context) (*util.AuthClaims, error) {
	claims := UserFrom(ctx)
	if claims == nil {
		return nil, errorHandler.Unauthorized(response.NotLoggedIn)
	}
	return claims, nil
}

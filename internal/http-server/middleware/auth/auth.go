// Package auth provides the bearer-token middleware that authenticates
// requests and exposes the acting user to handlers.
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/jwt"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"

	"github.com/go-chi/render"
)

type ctxKey struct{}

// Actor is the authenticated identity attempting an operation.
type Actor struct {
	ID    int
	Email string
	Roles []models.Role
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	for _, role := range a.Roles {
		if role == models.RoleAdmin {
			return true
		}
	}
	return false
}

// New returns a middleware rejecting requests without a valid bearer token
// and storing the token's actor in the request context.
func New(log *slog.Logger, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(slog.String("component", "middleware/auth"))

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authorization required"))
				return
			}

			claims, err := jwt.ParseToken(strings.TrimPrefix(header, "Bearer "), secret)
			if err != nil {
				log.Warn("invalid token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid token"))
				return
			}

			actor := Actor{
				ID:    claims.UserID,
				Email: claims.Email,
				Roles: claims.Roles,
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, actor)))
		}

		return http.HandlerFunc(fn)
	}
}

// ActorFromContext returns the actor stored by the middleware.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(ctxKey{}).(Actor)
	return actor, ok
}

// WithActor stores an actor in the context. Intended for tests.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/elarca/treasury/pkg/response"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ActorKey is the context key for the authenticated actor
	ActorKey ContextKey = "actor"
)

// Role identifies what an actor is allowed to do
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RolePresident Role = "PRESIDENT"
)

// Actor is the request-scoped identity performing an operation.
// Authentication itself is handled by the surrounding platform; this
// service only consumes the identity it forwards.
type Actor struct {
	ID   int64
	Role Role
}

// ActorMiddleware extracts the forwarded identity from the X-Actor-ID
// and X-Actor-Role headers set by the authenticating gateway
func ActorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := r.Header.Get("X-Actor-ID")
		if idStr == "" {
			response.Unauthorized(w, "Missing actor identity")
			return
		}

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			response.Unauthorized(w, "Invalid actor identity")
			return
		}

		role := Role(r.Header.Get("X-Actor-Role"))
		if role != RoleAdmin && role != RolePresident {
			role = RolePresident
		}

		ctx := context.WithValue(r.Context(), ActorKey, Actor{ID: id, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects requests whose actor does not have the admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := GetActor(r.Context())
		if !ok {
			response.Unauthorized(w, "Missing actor identity")
			return
		}
		if actor.Role != RoleAdmin {
			response.Forbidden(w, "Administrator role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetActor extracts the actor from the request context
func GetActor(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(ActorKey).(Actor)
	return actor, ok
}

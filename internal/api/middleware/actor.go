package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Pawhub/internal/core/users"
)

// Context keys for storing request identity
type contextKey string

const actorKey contextKey = "actor"

// ActorMiddleware resolves the acting user for a request. The identity store
// is an external collaborator; requests carry the actor id in the X-Actor-ID
// header (or an actorId query parameter) and the middleware resolves it to a
// full user.
type ActorMiddleware struct {
	users users.Service
}

// NewActorMiddleware creates a new actor resolution middleware
func NewActorMiddleware(userService users.Service) *ActorMiddleware {
	return &ActorMiddleware{users: userService}
}

func (m *ActorMiddleware) resolve(r *http.Request) (*users.User, error) {
	raw := r.Header.Get("X-Actor-ID")
	if raw == "" {
		raw = r.URL.Query().Get("actorId")
	}
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, users.ErrUserNotFound
	}

	return m.users.GetByID(r.Context(), id)
}

// RequireActor ensures the request carries a resolvable actor.
// Returns 401 otherwise and injects the user into the request context.
func (m *ActorMiddleware) RequireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := m.resolve(r)
		if err != nil {
			if users.IsNotFound(err) {
				writeActorError(w, http.StatusUnauthorized, "Unknown actor")
				return
			}
			log.Printf("Failed to resolve actor: %v", err)
			writeActorError(w, http.StatusInternalServerError, "Failed to resolve actor")
			return
		}
		if actor == nil {
			writeActorError(w, http.StatusUnauthorized, "Missing X-Actor-ID header")
			return
		}

		ctx := context.WithValue(r.Context(), actorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalActor resolves the actor when present but lets anonymous requests
// through. Used by read paths whose results only personalize with a caller.
func (m *ActorMiddleware) OptionalActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := m.resolve(r)
		if err == nil && actor != nil {
			r = r.WithContext(context.WithValue(r.Context(), actorKey, actor))
		}
		next.ServeHTTP(w, r)
	})
}

// GetActor returns the resolved actor from the request context, or nil
func GetActor(r *http.Request) *users.User {
	actor, _ := r.Context().Value(actorKey).(*users.User)
	return actor
}

func writeActorError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   "AuthRequired",
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

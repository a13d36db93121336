package post

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Pawhub/internal/api/middleware"
	"Pawhub/internal/core/engagement"
	"Pawhub/internal/core/users"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing

// mockActorService resolves a fixed set of users for the actor middleware
type mockActorService struct {
	users.Service
	known map[int64]*users.User
}

func (m *mockActorService) GetByID(ctx context.Context, id int64) (*users.User, error) {
	if u, ok := m.known[id]; ok {
		return u, nil
	}
	return nil, users.ErrUserNotFound
}

// mockEngagementService tracks likes as (user, post) pairs
type mockEngagementService struct {
	engagement.Service
	likes map[[2]int64]bool
}

func (m *mockEngagementService) Liked(ctx context.Context, postID, userID int64) (bool, error) {
	if postID == 404 {
		return false, engagement.ErrPostNotFound
	}
	return m.likes[[2]int64{userID, postID}], nil
}

// newLikeStateRouter wires the like-state route the way the post routes do,
// behind RequireActor.
func newLikeStateRouter(likes map[[2]int64]bool) chi.Router {
	actor := middleware.NewActorMiddleware(&mockActorService{
		known: map[int64]*users.User{
			1: {ID: 1, Name: "Jess", Role: users.RoleMember},
		},
	})
	handler := NewEngageHandler(&mockEngagementService{likes: likes})

	r := chi.NewRouter()
	r.With(actor.RequireActor).Get("/api/posts/{id}/like", handler.HandleLikeState)
	return r
}

func TestHandleLikeState_ReportsActorLike(t *testing.T) {
	router := newLikeStateRouter(map[[2]int64]bool{{1, 7}: true})

	req := httptest.NewRequest(http.MethodGet, "/api/posts/7/like", nil)
	req.Header.Set("X-Actor-ID", "1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body["liked"])
}

func TestHandleLikeState_NotLiked(t *testing.T) {
	router := newLikeStateRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/7/like", nil)
	req.Header.Set("X-Actor-ID", "1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body["liked"])
}

func TestHandleLikeState_RequiresActor(t *testing.T) {
	router := newLikeStateRouter(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts/7/like", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleLikeState_UnknownPost(t *testing.T) {
	router := newLikeStateRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/404/like", nil)
	req.Header.Set("X-Actor-ID", "1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

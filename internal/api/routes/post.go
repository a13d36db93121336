package routes

import (
	"Pawhub/internal/api/handlers/post"
	"Pawhub/internal/api/middleware"
	"Pawhub/internal/core/engagement"
	"Pawhub/internal/core/notifications"
	"Pawhub/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers post endpoints on the router.
// Listing is open to anonymous callers; writes require a resolved actor.
func RegisterPostRoutes(r chi.Router, postService posts.Service, engageService engagement.Service,
	notifier notifications.Service, actor *middleware.ActorMiddleware) {

	createHandler := post.NewCreateHandler(postService)
	listHandler := post.NewListHandler(postService)
	updateHandler := post.NewUpdateHandler(postService)
	moderateHandler := post.NewModerateHandler(postService, notifier)
	engageHandler := post.NewEngageHandler(engageService)

	r.Route("/api/posts", func(r chi.Router) {
		// Reads. The feed personalizes when an actor is present, so the
		// actor is optional rather than required.
		r.With(actor.OptionalActor).Get("/", listHandler.HandleList)
		r.Get("/{id}", listHandler.HandleGet)
		r.Get("/user/{userId}", listHandler.HandleListByAuthor)
		r.Get("/{id}/comments", engageHandler.HandleListComments)
		r.With(actor.RequireActor).Get("/pending", listHandler.HandleListPending)
		r.With(actor.RequireActor).Get("/{id}/like", engageHandler.HandleLikeState)

		// View counting is a write but needs no identity
		r.Put("/{id}/view", listHandler.HandleRecordView)

		// Authenticated writes
		r.With(actor.RequireActor).Post("/", createHandler.HandleCreate)
		r.With(actor.RequireActor).Put("/{id}", updateHandler.HandleUpdate)
		r.With(actor.RequireActor).Delete("/{id}", updateHandler.HandleDelete)
		r.With(actor.RequireActor).Put("/{id}/like", engageHandler.HandleToggleLike)
		r.With(actor.RequireActor).Post("/{id}/comments", engageHandler.HandleAddComment)

		// Moderation decisions
		r.With(actor.RequireActor).Put("/{id}/approve", moderateHandler.HandleApprove)
		r.With(actor.RequireActor).Put("/{id}/reject", moderateHandler.HandleReject)
	})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chirp-social/chirp/internal/middleware"
)

// SetupRoutes wires every endpoint. Register and login are public;
// everything else sits behind the JWT middleware and the rate limiter.
func SetupRoutes(
	app *fiber.App,
	jwtSecret string,
	limiter *middleware.RateLimiter,
	auth *AuthHandler,
	friendships *FriendshipHandler,
	posts *PostHandler,
	comments *CommentHandler,
) {
	api := app.Group("/api", limiter.IPHandler())

	authGroup := api.Group("/auth")
	authGroup.Post("/register", auth.Register)
	authGroup.Post("/login", auth.Login)

	protected := []fiber.Handler{middleware.Protected(jwtSecret), limiter.UserHandler()}

	friendshipGroup := api.Group("/friendships", protected...)
	friendshipGroup.Post("/send/:username", friendships.SendRequest)
	friendshipGroup.Put("/accept/:username", friendships.AcceptRequest)
	friendshipGroup.Delete("/reject/:username", friendships.RejectRequest)
	friendshipGroup.Get("/friends", friendships.ListFriends)
	friendshipGroup.Get("/requests", friendships.ListPendingRequests)

	postGroup := api.Group("/posts", protected...)
	postGroup.Post("/create", posts.CreatePost)
	postGroup.Put("/edit/:id", posts.EditPost)
	postGroup.Get("/feed", posts.GetFeed)
	postGroup.Get("/user/:username", posts.GetPostsByUser)
	postGroup.Post("/like/:id", posts.ToggleLike)
	// Registered after the named routes so "feed" and "user" are not
	// swallowed by the id parameter.
	postGroup.Get("/:id", posts.GetPost)
	postGroup.Delete("/:id", posts.DeletePost)

	commentGroup := api.Group("/comments", protected...)
	commentGroup.Post("/post/:postId", comments.AddComment)
	commentGroup.Put("/:commentId", comments.EditComment)
	commentGroup.Delete("/:commentId", comments.DeleteComment)
}

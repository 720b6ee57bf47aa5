package rest

import (
	"net/http"
)

// NewRouter initializes the HTTP router and registers routes under the users
// namespace. The collection routes sit behind token auth; the caller identity
// always comes from verified claims.
func NewRouter(h *Handler, authH *AuthHandler, jwtSecret string, mws ...Middleware) http.Handler {
	mux := http.NewServeMux()

	// Auth Routes (Public)
	mux.HandleFunc("POST /api/users/register", authH.Register)
	mux.HandleFunc("POST /api/users/login", authH.Login)

	// Listing users is disabled on purpose.
	mux.HandleFunc("GET /api/users", authH.ListDisabled)
	mux.HandleFunc("GET /api/users/{$}", authH.ListDisabled)

	// Public profile lookup, used for attribution display.
	mux.HandleFunc("POST /api/users/getUser", h.GetUser)

	// Protected Routes
	auth := AuthMiddleware(jwtSecret)

	mux.Handle("GET /api/users/inLikedVideos", auth(http.HandlerFunc(h.InLikedVideos)))
	mux.Handle("GET /api/users/inDislikedVideos", auth(http.HandlerFunc(h.InDislikedVideos)))
	mux.Handle("POST /api/users/addToLikedVideos", auth(http.HandlerFunc(h.AddToLikedVideos)))
	mux.Handle("DELETE /api/users/removeFromLikedVideos", auth(http.HandlerFunc(h.RemoveFromLikedVideos)))
	mux.Handle("POST /api/users/addToDislikedVideos", auth(http.HandlerFunc(h.AddToDislikedVideos)))
	mux.Handle("DELETE /api/users/removeFromDislikedVideos", auth(http.HandlerFunc(h.RemoveFromDislikedVideos)))

	// Wrap with middleware
	return Chain(mux, mws...)
}

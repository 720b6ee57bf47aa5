package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go-edustream-app/internal/core/domain/accounts"
	"go-edustream-app/internal/core/ports"
)

// Handler serves the profile lookup and the liked/disliked collection routes.
type Handler struct {
	service ports.CollectionService
	logger  *slog.Logger
}

func NewHandler(service ports.CollectionService, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// GetUser handles POST /api/users/getUser. Absent users get the placeholder
// profile with a 404 so display components can still render attribution.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	var req getUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	profile, err := h.service.GetProfile(r.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, accounts.DeletedProfile)
			return
		}
		h.logger.Error("profile lookup failed", "user_id", req.UserID, "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Server Error"})
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// InLikedVideos handles GET /api/users/inLikedVideos?video_id=...
func (h *Handler) InLikedVideos(w http.ResponseWriter, r *http.Request) {
	h.membership(w, r, accounts.SetLiked, "video_liked")
}

// InDislikedVideos handles GET /api/users/inDislikedVideos?video_id=...
func (h *Handler) InDislikedVideos(w http.ResponseWriter, r *http.Request) {
	h.membership(w, r, accounts.SetDisliked, "video_disliked")
}

// AddToLikedVideos handles POST /api/users/addToLikedVideos.
func (h *Handler) AddToLikedVideos(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, accounts.SetLiked, h.service.AddVideo, msgAddedToLiked)
}

// RemoveFromLikedVideos handles DELETE /api/users/removeFromLikedVideos.
func (h *Handler) RemoveFromLikedVideos(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, accounts.SetLiked, h.service.RemoveVideo, msgRemovedFromLiked)
}

// AddToDislikedVideos handles POST /api/users/addToDislikedVideos.
func (h *Handler) AddToDislikedVideos(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, accounts.SetDisliked, h.service.AddVideo, msgAddedToDisliked)
}

// RemoveFromDislikedVideos handles DELETE /api/users/removeFromDislikedVideos.
func (h *Handler) RemoveFromDislikedVideos(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, accounts.SetDisliked, h.service.RemoveVideo, msgRemovedFromDislike)
}

type mutationFunc func(ctx context.Context, userID string, set accounts.VideoSet, videoID string) error

// mutate runs one set mutation for the authenticated caller. The user id is
// taken from the verified token in the request context, never from the body.
func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, set accounts.VideoSet, op mutationFunc, message string) {
	userID, ok := r.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	var req videoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.VideoID == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"video_id": "Video id field is required"})
		return
	}

	if err := op(r.Context(), userID, set, req.VideoID); err != nil {
		h.respondCollectionError(w, userID, err)
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: message})
}

func (h *Handler) membership(w http.ResponseWriter, r *http.Request, set accounts.VideoSet, key string) {
	userID, ok := r.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	videoID := r.URL.Query().Get("video_id")
	if videoID == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"video_id": "Video id field is required"})
		return
	}

	member, err := h.service.Contains(r.Context(), userID, set, videoID)
	if err != nil {
		h.respondCollectionError(w, userID, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{key: member})
}

func (h *Handler) respondCollectionError(w http.ResponseWriter, userID string, err error) {
	if errors.Is(err, accounts.ErrNotFound) {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "user not found"})
		return
	}
	h.logger.Error("collection operation failed", "user_id", userID, "error", err)
	respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Server Error"})
}

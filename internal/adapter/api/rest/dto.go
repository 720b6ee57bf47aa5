package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// videoRequest carries the video id for the set-mutation endpoints. The user
// id comes from the verified token, so the body deliberately has no user_id.
type videoRequest struct {
	VideoID string `json:"video_id"`
}

type getUserRequest struct {
	UserID string `json:"user_id"`
}

// Mutation acknowledgment messages, matching what clients display.
const (
	msgUserCreated        = "User created!"
	msgAddedToLiked       = "Video added to liked videos!"
	msgRemovedFromLiked   = "Video removed from liked videos!"
	msgAddedToDisliked    = "Video added to disliked videos!"
	msgRemovedFromDislike = "Video removed from disliked videos!"
)

func respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

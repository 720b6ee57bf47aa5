package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"go-edustream-app/internal/core/domain/accounts"
	"go-edustream-app/internal/core/ports"
)

var tracer = otel.Tracer("internal/core/service")

// CollectionService manages the per-user liked/disliked video sets and
// serves profile lookups through the cache.
type CollectionService struct {
	users  ports.UserRepository
	cache  ports.Cache
	logger *slog.Logger
}

func NewCollectionService(users ports.UserRepository, cache ports.Cache, logger *slog.Logger) *CollectionService {
	return &CollectionService{
		users:  users,
		cache:  cache,
		logger: logger,
	}
}

// AddVideo adds videoID to the user's named set. The store performs an
// atomic add-if-absent, so repeated adds stay idempotent under concurrency.
func (s *CollectionService) AddVideo(ctx context.Context, userID string, set accounts.VideoSet, videoID string) error {
	ctx, span := tracer.Start(ctx, "CollectionService.AddVideo", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.String("video.set", string(set)),
	))
	defer span.End()

	s.logger.InfoContext(ctx, "adding video to set", "user_id", userID, "set", set, "video_id", videoID)

	if err := s.users.AddVideo(ctx, userID, set, videoID); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// RemoveVideo removes videoID from the user's named set. Removing a
// non-member succeeds without effect.
func (s *CollectionService) RemoveVideo(ctx context.Context, userID string, set accounts.VideoSet, videoID string) error {
	ctx, span := tracer.Start(ctx, "CollectionService.RemoveVideo", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.String("video.set", string(set)),
	))
	defer span.End()

	s.logger.InfoContext(ctx, "removing video from set", "user_id", userID, "set", set, "video_id", videoID)

	if err := s.users.RemoveVideo(ctx, userID, set, videoID); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// Contains reports membership of videoID in the user's named set.
func (s *CollectionService) Contains(ctx context.Context, userID string, set accounts.VideoSet, videoID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "CollectionService.Contains", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.String("video.set", string(set)),
	))
	defer span.End()

	member, err := s.users.HasVideo(ctx, userID, set, videoID)
	if err != nil {
		span.RecordError(err)
		return false, err
	}
	return member, nil
}

// GetProfile returns the public profile for a user id, reading through the
// cache. Profiles are immutable in this slice, so cached entries only age
// out by TTL.
func (s *CollectionService) GetProfile(ctx context.Context, userID string) (accounts.Profile, error) {
	ctx, span := tracer.Start(ctx, "CollectionService.GetProfile", trace.WithAttributes(
		attribute.String("user.id", userID),
	))
	defer span.End()

	if data, err := s.cache.Get(ctx, userID); err != nil {
		s.logger.Warn("profile cache read failed", "user_id", userID, "error", err)
	} else if data != nil {
		var profile accounts.Profile
		if err := json.Unmarshal(data, &profile); err == nil {
			return profile, nil
		}
		s.logger.Warn("dropping corrupt profile cache entry", "user_id", userID)
		if err := s.cache.Invalidate(ctx, userID); err != nil {
			s.logger.Warn("profile cache invalidate failed", "user_id", userID, "error", err)
		}
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return accounts.Profile{}, err
	}

	profile := accounts.Profile{
		Name:                 user.Name,
		EducationInstitution: user.EducationInstitution,
	}
	s.updateCache(ctx, userID, profile)
	return profile, nil
}

func (s *CollectionService) updateCache(ctx context.Context, userID string, profile accounts.Profile) {
	data, err := json.Marshal(profile)
	if err != nil {
		s.logger.Error("failed to marshal profile for cache", "error", err)
		return
	}
	if err := s.cache.Set(ctx, userID, data); err != nil {
		s.logger.Error("failed to set profile cache", "error", fmt.Errorf("user %s: %w", userID, err))
	}
}

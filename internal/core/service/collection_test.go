package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-edustream-app/internal/core/domain/accounts"
)

func newCollectionService(users *MockUserRepository, cache *MockCache) *CollectionService {
	return NewCollectionService(users, cache, slog.Default())
}

func TestCollectionService_AddVideo(t *testing.T) {
	t.Run("delegates to repository", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		svc := newCollectionService(mockUsers, new(MockCache))

		mockUsers.On("AddVideo", mock.Anything, "user1", accounts.SetLiked, "vid1").Return(nil)

		err := svc.AddVideo(context.Background(), "user1", accounts.SetLiked, "vid1")
		assert.NoError(t, err)
		mockUsers.AssertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		svc := newCollectionService(mockUsers, new(MockCache))

		mockUsers.On("AddVideo", mock.Anything, "ghost", accounts.SetDisliked, "vid1").Return(accounts.ErrNotFound)

		err := svc.AddVideo(context.Background(), "ghost", accounts.SetDisliked, "vid1")
		assert.ErrorIs(t, err, accounts.ErrNotFound)
	})
}

func TestCollectionService_RemoveVideo(t *testing.T) {
	mockUsers := new(MockUserRepository)
	svc := newCollectionService(mockUsers, new(MockCache))

	mockUsers.On("RemoveVideo", mock.Anything, "user1", accounts.SetLiked, "vid1").Return(nil)

	err := svc.RemoveVideo(context.Background(), "user1", accounts.SetLiked, "vid1")
	assert.NoError(t, err)
	mockUsers.AssertExpectations(t)
}

func TestCollectionService_Contains(t *testing.T) {
	t.Run("member", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		svc := newCollectionService(mockUsers, new(MockCache))
		mockUsers.On("HasVideo", mock.Anything, "user1", accounts.SetLiked, "vid1").Return(true, nil)

		member, err := svc.Contains(context.Background(), "user1", accounts.SetLiked, "vid1")
		assert.NoError(t, err)
		assert.True(t, member)
	})

	t.Run("non-member", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		svc := newCollectionService(mockUsers, new(MockCache))
		mockUsers.On("HasVideo", mock.Anything, "user1", accounts.SetDisliked, "vid2").Return(false, nil)

		member, err := svc.Contains(context.Background(), "user1", accounts.SetDisliked, "vid2")
		assert.NoError(t, err)
		assert.False(t, member)
	})

	t.Run("repo error", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		svc := newCollectionService(mockUsers, new(MockCache))
		mockUsers.On("HasVideo", mock.Anything, "user1", accounts.SetLiked, "vid1").Return(false, errors.New("db down"))

		_, err := svc.Contains(context.Background(), "user1", accounts.SetLiked, "vid1")
		assert.Error(t, err)
	})
}

func TestCollectionService_GetProfile(t *testing.T) {
	t.Run("cache hit skips repository", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockCache := new(MockCache)
		svc := newCollectionService(mockUsers, mockCache)

		mockCache.On("Get", mock.Anything, "user1").
			Return([]byte(`{"name":"Ada","education_institution":"Analytical University"}`), nil)

		profile, err := svc.GetProfile(context.Background(), "user1")
		assert.NoError(t, err)
		assert.Equal(t, "Ada", profile.Name)
		assert.Equal(t, "Analytical University", profile.EducationInstitution)
		mockUsers.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("cache miss reads repository and fills cache", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockCache := new(MockCache)
		svc := newCollectionService(mockUsers, mockCache)

		mockCache.On("Get", mock.Anything, "user1").Return(nil, nil)
		mockUsers.On("FindByID", mock.Anything, "user1").Return(accounts.User{
			ID:                   "user1",
			Name:                 "Ada",
			EducationInstitution: "Analytical University",
		}, nil)
		mockCache.On("Set", mock.Anything, "user1", mock.Anything).Return(nil)

		profile, err := svc.GetProfile(context.Background(), "user1")
		assert.NoError(t, err)
		assert.Equal(t, "Ada", profile.Name)
		mockCache.AssertExpectations(t)
	})

	t.Run("absent user yields not found", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockCache := new(MockCache)
		svc := newCollectionService(mockUsers, mockCache)

		mockCache.On("Get", mock.Anything, "ghost").Return(nil, nil)
		mockUsers.On("FindByID", mock.Anything, "ghost").Return(accounts.User{}, accounts.ErrNotFound)

		_, err := svc.GetProfile(context.Background(), "ghost")
		assert.ErrorIs(t, err, accounts.ErrNotFound)
	})

	t.Run("cache failure falls back to repository", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockCache := new(MockCache)
		svc := newCollectionService(mockUsers, mockCache)

		mockCache.On("Get", mock.Anything, "user1").Return(nil, errors.New("redis down"))
		mockUsers.On("FindByID", mock.Anything, "user1").Return(accounts.User{ID: "user1", Name: "Ada"}, nil)
		mockCache.On("Set", mock.Anything, "user1", mock.Anything).Return(errors.New("redis down"))

		profile, err := svc.GetProfile(context.Background(), "user1")
		assert.NoError(t, err)
		assert.Equal(t, "Ada", profile.Name)
	})
}

package core

import (
	"context"
	"errors"

	"github.com/example/eventapp/internal/db"
)

type likeService struct {
	users  db.UserRepository
	photos db.PhotoRepository
}

// NewLikeService creates a LikeService.
func NewLikeService(users db.UserRepository, photos db.PhotoRepository) LikeService {
	return &likeService{users: users, photos: photos}
}

// FetchLikes returns the caller's liked photo IDs as stored.
func (s *likeService) FetchLikes(ctx context.Context, uid string) ([]string, error) {
	user, err := getUser(ctx, s.users, uid)
	if err != nil {
		return nil, err
	}
	if user.Likes == nil {
		return []string{}, nil
	}
	return user.Likes, nil
}

// SetLikes overwrites the caller's like list.
func (s *likeService) SetLikes(ctx context.Context, uid string, likes []string) error {
	if uid == "" {
		return ErrUnauthenticated
	}
	return s.users.MergeLikes(ctx, uid, likes)
}

// SetFavoriteCount overwrites a photo's favorite count. Concurrent callers
// are not coordinated; the last write wins.
func (s *likeService) SetFavoriteCount(ctx context.Context, photoID string, fav int64) error {
	if photoID == "" {
		return errors.New("photo ID cannot be empty")
	}
	return s.photos.UpdateFav(ctx, photoID, fav)
}

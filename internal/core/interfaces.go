package core

import (
	"context"

	"github.com/example/eventapp/internal/models"
)

// FeedService builds the photo feed.
type FeedService interface {
	// ListFeed returns every photo, newest first, with its owner's nickname
	// and a human-readable age.
	ListFeed(ctx context.Context) ([]models.FeedItem, error)
}

// LikeService manages liked photos and favorite counts.
type LikeService interface {
	FetchLikes(ctx context.Context, uid string) ([]string, error)
	SetLikes(ctx context.Context, uid string, likes []string) error
	SetFavoriteCount(ctx context.Context, photoID string, fav int64) error
}

// CheckinService manages the caller's program check-in list. Updates are
// read-modify-write without isolation; concurrent calls for one user race
// and the last write wins.
type CheckinService interface {
	Checkin(ctx context.Context, uid, programID string) ([]string, error)
	Checkout(ctx context.Context, uid, programID string) ([]string, error)
	ListCheckins(ctx context.Context, uid string) ([]string, error)
	ListOpenPrograms(ctx context.Context) ([]*models.Program, error)
}

// RewardService manages reward balances. ApplyReward is a read-then-write
// without a transaction; concurrent calls can lose an update.
type RewardService interface {
	FetchReward(ctx context.Context, uid string) (int64, error)
	ApplyReward(ctx context.Context, uid string, delta int64) (int64, error)
}

// SettingsService reads and writes the settings sub-record.
type SettingsService interface {
	FetchSettings(ctx context.Context, uid string) (*models.Settings, error)
	// UpdateSettings returns the message to show the user. On a validation
	// failure the error is a *ValidationError and nothing is written.
	UpdateSettings(ctx context.Context, uid string, form models.SettingsForm) (string, error)
}

// UserService provisions user documents.
type UserService interface {
	CreateUserRecord(ctx context.Context, uid, nickName string) (*models.User, error)
}

// LookupService performs read-only lookups.
type LookupService interface {
	FetchQRInfo(ctx context.Context, qrID string) (*models.QRInfo, error)
	FetchProgramInfo(ctx context.Context, programID string) (*models.Program, error)
	FetchPlace(ctx context.Context, placeID string) (*models.Place, error)
	ListPlaces(ctx context.Context) ([]*models.Place, error)
	FetchMode(ctx context.Context, uid string) (*models.ModeInfo, error)
}

// JournalService appends logs and signatures.
type JournalService interface {
	PostLog(ctx context.Context, uid string, req models.LogRequest) (string, error)
	// PostSignature returns the new signature's ID, or "" when it could not
	// be stored.
	PostSignature(ctx context.Context, sign string) string
}

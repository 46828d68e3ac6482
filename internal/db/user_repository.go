package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/eventapp/internal/models"
)

const usersCollection = "users"

type userRepository struct {
	store Store
}

// NewUserRepository creates a UserRepository on store.
func NewUserRepository(store Store) UserRepository {
	return &userRepository{store: store}
}

// GetByID retrieves a user document by its Firebase Auth UID.
func (r *userRepository) GetByID(ctx context.Context, uid string) (*models.User, error) {
	if uid == "" {
		return nil, errors.New("uid cannot be empty for GetByID operation")
	}
	doc, err := r.store.Get(ctx, usersCollection, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to get user with ID '%s': %w", uid, err)
	}
	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user data for ID '%s': %w", uid, err)
	}
	user.ID = doc.ID
	return &user, nil
}

// Replace overwrites the user's document. prevReward and
// settings.notification are not part of a fresh document and are left out;
// zero timestamps are written as server timestamps.
func (r *userRepository) Replace(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		return errors.New("user ID cannot be empty for Replace operation")
	}
	doc := map[string]interface{}{
		"checkinProgramIds": nonNil(u.CheckinProgramIDs),
		"likes":             nonNil(u.Likes),
		"createdAt":         timestamp(u.CreatedAt),
		"reward":            u.Reward,
		"currentPlace":      u.CurrentPlace,
		"notification": map[string]interface{}{
			"isNotify":  u.Notification.IsNotify,
			"id":        u.Notification.ID,
			"createdAt": timestamp(u.Notification.CreatedAt),
		},
		"settings": map[string]interface{}{
			"nickName":             u.Settings.NickName,
			"modeOfTransportation": u.Settings.ModeOfTransportation,
			"timeTable":            u.Settings.TimeTable,
		},
		"dev":        u.Dev,
		"university": u.University,
		"form":       u.Form,
	}
	if err := r.store.Set(ctx, usersCollection, u.ID, doc); err != nil {
		return fmt.Errorf("failed to replace user with ID '%s': %w", u.ID, err)
	}
	return nil
}

func (r *userRepository) merge(ctx context.Context, uid string, fields map[string]interface{}) error {
	if uid == "" {
		return errors.New("uid cannot be empty for merge operation")
	}
	if err := r.store.Merge(ctx, usersCollection, uid, fields); err != nil {
		return fmt.Errorf("failed to update user with ID '%s': %w", uid, err)
	}
	return nil
}

func (r *userRepository) MergeLikes(ctx context.Context, uid string, likes []string) error {
	return r.merge(ctx, uid, map[string]interface{}{"likes": nonNil(likes)})
}

func (r *userRepository) MergeCheckins(ctx context.Context, uid string, programIDs []string) error {
	return r.merge(ctx, uid, map[string]interface{}{"checkinProgramIds": nonNil(programIDs)})
}

func (r *userRepository) MergeReward(ctx context.Context, uid string, reward, prevReward int64) error {
	return r.merge(ctx, uid, map[string]interface{}{
		"reward":     reward,
		"prevReward": prevReward,
	})
}

func (r *userRepository) MergeSettings(ctx context.Context, uid string, s models.Settings) error {
	return r.merge(ctx, uid, map[string]interface{}{
		"settings": map[string]interface{}{
			"notification":         s.Notification,
			"nickName":             s.NickName,
			"modeOfTransportation": s.ModeOfTransportation,
			"timeTable":            s.TimeTable,
		},
	})
}

// nonNil keeps empty lists stored as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func timestamp(t time.Time) interface{} {
	if t.IsZero() {
		return ServerTimestamp
	}
	return t
}

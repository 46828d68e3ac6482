package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/eventapp/internal/db"
	"github.com/example/eventapp/internal/models"
)

type userService struct {
	users db.UserRepository
}

// NewUserService creates a UserService.
func NewUserService(users db.UserRepository) UserService {
	return &userService{users: users}
}

// NewUserRecord returns the document shape every user starts with.
func NewUserRecord(uid, nickName string) *models.User {
	return &models.User{
		ID:                uid,
		CheckinProgramIDs: []string{},
		Likes:             []string{},
		Reward:            0,
		CurrentPlace:      "none",
		Notification:      models.Notification{IsNotify: false, ID: ""},
		Settings: models.Settings{
			NickName:             nickName,
			ModeOfTransportation: "",
			TimeTable:            models.NewTimeTable(),
		},
		Dev:        false,
		University: false,
		Form:       map[string]bool{"1": false, "2": false},
	}
}

// CreateUserRecord writes a fresh user document for uid and returns it as
// stored, server timestamps included. An existing document is overwritten
// entirely, not merged.
func (s *userService) CreateUserRecord(ctx context.Context, uid, nickName string) (*models.User, error) {
	if uid == "" {
		return nil, ErrUnauthenticated
	}
	if err := s.users.Replace(ctx, NewUserRecord(uid, nickName)); err != nil {
		return nil, fmt.Errorf("failed to create user record: %w", err)
	}
	stored, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to read back user record: %w", err)
	}
	return stored, nil
}

// getUser loads the caller's document, mapping a missing document to
// ErrUserNotFound.
func getUser(ctx context.Context, users db.UserRepository, uid string) (*models.User, error) {
	if uid == "" {
		return nil, ErrUnauthenticated
	}
	user, err := users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, userNotFound(uid, err)
		}
		return nil, err
	}
	return user, nil
}

package core

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/example/eventapp/internal/db"
	"github.com/example/eventapp/internal/events"
	"github.com/example/eventapp/internal/models"
)

type checkinService struct {
	users     db.UserRepository
	programs  db.ProgramRepository
	publisher events.Publisher
	logger    *zap.Logger
}

// NewCheckinService creates a CheckinService.
func NewCheckinService(users db.UserRepository, programs db.ProgramRepository, publisher events.Publisher, logger *zap.Logger) CheckinService {
	return &checkinService{users: users, programs: programs, publisher: publisher, logger: logger}
}

// Checkin adds programID to the caller's list and returns the stored list.
func (s *checkinService) Checkin(ctx context.Context, uid, programID string) ([]string, error) {
	current, err := s.current(ctx, uid)
	if err != nil {
		return nil, err
	}
	updated := addToSet(current, programID)
	if err := s.users.MergeCheckins(ctx, uid, updated); err != nil {
		return nil, err
	}
	notify(ctx, s.publisher, s.logger, events.Checkin, uid, programID)
	return updated, nil
}

// Checkout removes every occurrence of programID from the caller's list.
func (s *checkinService) Checkout(ctx context.Context, uid, programID string) ([]string, error) {
	current, err := s.current(ctx, uid)
	if err != nil {
		return nil, err
	}
	updated := removeAll(current, programID)
	if err := s.users.MergeCheckins(ctx, uid, updated); err != nil {
		return nil, err
	}
	notify(ctx, s.publisher, s.logger, events.Checkout, uid, programID)
	return updated, nil
}

// ListCheckins returns the caller's list, or an empty list when there is no
// caller.
func (s *checkinService) ListCheckins(ctx context.Context, uid string) ([]string, error) {
	if uid == "" {
		return []string{}, nil
	}
	return s.current(ctx, uid)
}

func (s *checkinService) ListOpenPrograms(ctx context.Context) ([]*models.Program, error) {
	return s.programs.ListOpen(ctx)
}

func (s *checkinService) current(ctx context.Context, uid string) ([]string, error) {
	user, err := getUser(ctx, s.users, uid)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return []string{}, nil
		}
		return nil, err
	}
	if user.CheckinProgramIDs == nil {
		return []string{}, nil
	}
	return user.CheckinProgramIDs, nil
}

// addToSet appends id and drops repeated entries, keeping the first
// occurrence of each.
func addToSet(list []string, id string) []string {
	seen := make(map[string]bool, len(list)+1)
	out := make([]string, 0, len(list)+1)
	for _, v := range append(append([]string(nil), list...), id) {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func removeAll(list []string, id string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

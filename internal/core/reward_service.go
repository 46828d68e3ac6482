package core

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/example/eventapp/internal/db"
	"github.com/example/eventapp/internal/events"
)

type rewardService struct {
	users     db.UserRepository
	publisher events.Publisher
	logger    *zap.Logger
}

// NewRewardService creates a RewardService.
func NewRewardService(users db.UserRepository, publisher events.Publisher, logger *zap.Logger) RewardService {
	return &rewardService{users: users, publisher: publisher, logger: logger}
}

func (s *rewardService) FetchReward(ctx context.Context, uid string) (int64, error) {
	user, err := getUser(ctx, s.users, uid)
	if err != nil {
		return 0, err
	}
	return user.Reward, nil
}

// ApplyReward adds delta to the balance and records the previous balance in
// prevReward. It returns the new balance.
func (s *rewardService) ApplyReward(ctx context.Context, uid string, delta int64) (int64, error) {
	old, err := s.FetchReward(ctx, uid)
	if err != nil {
		return 0, err
	}
	updated := old + delta
	if err := s.users.MergeReward(ctx, uid, updated, old); err != nil {
		return 0, fmt.Errorf("failed to apply reward: %w", err)
	}
	notify(ctx, s.publisher, s.logger, events.RewardApplied, uid, strconv.FormatInt(delta, 10))
	return updated, nil
}

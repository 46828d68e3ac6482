package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/eventapp/internal/events"
)

func TestApplyReward(t *testing.T) {
	env := newTestEnv(t)
	env.put(t, "users", "u1", map[string]interface{}{"reward": int64(5), "likes": []string{"p1"}})
	svc := NewRewardService(env.users, env.publisher, env.logger)
	ctx := context.Background()

	balance, err := svc.ApplyReward(ctx, "u1", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(15), balance)

	doc := env.get(t, "users", "u1")
	assert.Equal(t, int64(15), doc["reward"])
	assert.Equal(t, int64(5), doc["prevReward"])
	assert.Equal(t, []interface{}{"p1"}, doc["likes"])

	reward, err := svc.FetchReward(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(15), reward)

	evs := env.publisher.Events()
	require.Len(t, evs, 1)
	assert.Equal(t, events.RewardApplied, evs[0].Type)
	assert.Equal(t, "10", evs[0].Subject)
}

func TestApplyNegativeReward(t *testing.T) {
	env := newTestEnv(t)
	env.put(t, "users", "u1", map[string]interface{}{"reward": int64(5)})
	svc := NewRewardService(env.users, env.publisher, env.logger)

	balance, err := svc.ApplyReward(context.Background(), "u1", -8)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), balance)
}

func TestRewardErrors(t *testing.T) {
	env := newTestEnv(t)
	svc := NewRewardService(env.users, env.publisher, env.logger)
	ctx := context.Background()

	_, err := svc.FetchReward(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.ApplyReward(ctx, "missing", 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, env.publisher.Events())
}

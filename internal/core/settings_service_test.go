package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/eventapp/internal/db"
	"github.com/example/eventapp/internal/models"
)

func TestUpdateSettings(t *testing.T) {
	env := newTestEnv(t)
	env.put(t, "users", "u1", map[string]interface{}{
		"reward":   int64(3),
		"settings": map[string]interface{}{"nickName": "old"},
	})
	svc := NewSettingsService(env.users, env.logger)
	ctx := context.Background()

	msg, err := svc.UpdateSettings(ctx, "u1", models.SettingsForm{
		Notification:         "true",
		NickName:             "あいうえおかきくけこ",
		ModeOfTransportation: "bus",
		TimeTable:            `{"0":[true,false,false],"5":[false,false,true]}`,
	})
	require.NoError(t, err)
	assert.Equal(t, SettingsSaved, msg)

	settings, err := svc.FetchSettings(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "あいうえおかきくけこ", settings.NickName)
	assert.Equal(t, "bus", settings.ModeOfTransportation)
	assert.True(t, settings.Notification)
	assert.Equal(t, []bool{true, false, false}, settings.TimeTable["0"])
	assert.Equal(t, []bool{false, false, true}, settings.TimeTable["5"])

	assert.Equal(t, int64(3), env.get(t, "users", "u1")["reward"])
}

func TestUpdateSettingsRejectsLongNickName(t *testing.T) {
	env := newTestEnv(t)
	env.put(t, "users", "u1", map[string]interface{}{
		"settings": map[string]interface{}{"nickName": "old"},
	})
	svc := NewSettingsService(env.users, env.logger)

	msg, err := svc.UpdateSettings(context.Background(), "u1", models.SettingsForm{
		NickName: "あいうえおかきくけこさ",
	})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, NickNameTooLongMessage, verr.Message)
	assert.Equal(t, NickNameTooLongMessage, msg)

	settings := env.get(t, "users", "u1")["settings"].(map[string]interface{})
	assert.Equal(t, "old", settings["nickName"])
}

func TestUpdateSettingsRejectsMalformedTimeTable(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSettingsService(env.users, env.logger)

	_, err := svc.UpdateSettings(context.Background(), "u1", models.SettingsForm{
		NickName:  "a",
		TimeTable: "{not json",
	})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))

	_, getErr := env.store.Get(context.Background(), "users", "u1")
	assert.ErrorIs(t, getErr, db.ErrNotFound)
}

func TestUpdateSettingsNotificationFlag(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSettingsService(env.users, env.logger)
	ctx := context.Background()

	_, err := svc.UpdateSettings(ctx, "u1", models.SettingsForm{NickName: "a", Notification: "false"})
	require.NoError(t, err)
	settings, err := svc.FetchSettings(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, settings.Notification)
}

func TestUpdateSettingsStoreFailure(t *testing.T) {
	store := &failingStore{MemoryStore: db.NewMemoryStore()}
	svc := NewSettingsService(db.NewUserRepository(store), newTestEnv(t).logger)

	msg, err := svc.UpdateSettings(context.Background(), "u1", models.SettingsForm{NickName: "a"})
	assert.ErrorIs(t, err, errStore)
	assert.Equal(t, SettingsFailedMessage, msg)
}

func TestUpdateSettingsRequiresIdentity(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSettingsService(env.users, env.logger)

	_, err := svc.UpdateSettings(context.Background(), "", models.SettingsForm{NickName: "a"})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

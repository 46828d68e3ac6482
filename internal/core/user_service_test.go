package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRecord(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.users)

	user, err := svc.CreateUserRecord(context.Background(), "u1", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Settings.NickName)
	assert.Equal(t, testNow, user.CreatedAt)
	assert.Equal(t, testNow, user.Notification.CreatedAt)
	assert.Len(t, user.Settings.TimeTable, 6)

	doc := env.get(t, "users", "u1")
	assert.Equal(t, []interface{}{}, doc["checkinProgramIds"])
	assert.Equal(t, []interface{}{}, doc["likes"])
	assert.Equal(t, int64(0), doc["reward"])
	assert.Equal(t, "none", doc["currentPlace"])
	assert.Equal(t, false, doc["dev"])
	assert.Equal(t, false, doc["university"])
	assert.Equal(t, testNow, doc["createdAt"])
	assert.Equal(t, map[string]interface{}{"1": false, "2": false}, doc["form"])
	assert.NotContains(t, doc, "prevReward")

	notification := doc["notification"].(map[string]interface{})
	assert.Equal(t, false, notification["isNotify"])
	assert.Equal(t, "", notification["id"])
	assert.Equal(t, testNow, notification["createdAt"])

	settings := doc["settings"].(map[string]interface{})
	assert.Equal(t, "Alice", settings["nickName"])
	assert.Equal(t, "", settings["modeOfTransportation"])
	timeTable := settings["timeTable"].(map[string]interface{})
	assert.Len(t, timeTable, 6)
	for _, day := range []string{"0", "1", "2", "3", "4", "5"} {
		assert.Equal(t, []interface{}{false, false, false}, timeTable[day], day)
	}
}

func TestCreateUserRecordOverwrites(t *testing.T) {
	env := newTestEnv(t)
	env.put(t, "users", "u1", map[string]interface{}{"reward": int64(50), "prevReward": int64(40)})
	svc := NewUserService(env.users)

	_, err := svc.CreateUserRecord(context.Background(), "u1", "Bob")
	require.NoError(t, err)

	doc := env.get(t, "users", "u1")
	assert.Equal(t, int64(0), doc["reward"])
	assert.NotContains(t, doc, "prevReward")
}

func TestCreateUserRecordRequiresIdentity(t *testing.T) {
	svc := NewUserService(newTestEnv(t).users)

	_, err := svc.CreateUserRecord(context.Background(), "", "Alice")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

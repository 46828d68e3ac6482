package core

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPostDate(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"just now", 0, "0分前"},
		{"minutes", 5 * time.Minute, "5分前"},
		{"below one hour", time.Hour - time.Millisecond, "59分前"},
		{"exactly one hour", time.Hour, "1時間前"},
		{"hours", 5 * time.Hour, "5時間前"},
		{"below one day", 24*time.Hour - time.Millisecond, "23時間前"},
		{"exactly one day", 24 * time.Hour, "1日前"},
		{"days", 6 * 24 * time.Hour, "6日前"},
		{"exactly one week", 7 * 24 * time.Hour, "2024年4月24日"},
		{"clock skew", -3 * time.Minute, "0分前"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPostDate(now.Add(-tt.elapsed), now, tokyo))
		})
	}
}

func TestFormatPostDateUsesDisplayZone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	posted := time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC)
	now := posted.Add(30 * 24 * time.Hour)

	assert.Equal(t, "2024年1月11日", FormatPostDate(posted, now, tokyo))
	assert.Equal(t, "2024年1月10日", FormatPostDate(posted, now, time.UTC))
}

func TestListFeed(t *testing.T) {
	env := newTestEnv(t)
	env.put(t, "users", "u1", map[string]interface{}{
		"settings": map[string]interface{}{"nickName": "Alice"},
	})
	env.put(t, "photos", "old", map[string]interface{}{
		"uid": "u1", "url": "https://img/old", "place": "hall", "fav": int64(3),
		"date": testNow.Add(-2 * time.Hour),
	})
	env.put(t, "photos", "new", map[string]interface{}{
		"uid": "u1", "url": "https://img/new", "place": "gate", "fav": int64(0),
		"date": testNow.Add(-10 * time.Minute),
	})
	env.put(t, "photos", "orphan", map[string]interface{}{
		"uid": "ghost", "url": "https://img/orphan", "place": "hall", "fav": int64(1),
		"date": testNow.Add(-3 * 24 * time.Hour),
	})

	svc := NewFeedService(env.photos, env.users, time.UTC, 2, func() time.Time { return testNow }, env.logger)
	feed, err := svc.ListFeed(context.Background())
	require.NoError(t, err)
	require.Len(t, feed, 3)

	assert.Equal(t, "new", feed[0].ID)
	assert.Equal(t, "Alice", feed[0].NickName)
	assert.Equal(t, "10分前", feed[0].PostDate)
	assert.Equal(t, "gate", feed[0].Place)

	assert.Equal(t, "old", feed[1].ID)
	assert.Equal(t, int64(3), feed[1].Fav)
	assert.Equal(t, "2時間前", feed[1].PostDate)

	assert.Equal(t, "orphan", feed[2].ID)
	assert.Equal(t, UnknownNickName, feed[2].NickName)
	assert.Equal(t, "3日前", feed[2].PostDate)
}

func TestListFeedMixesOwnedAndAnonymousPhotos(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 50; i++ {
		uid := "u" + strconv.Itoa(i)
		env.put(t, "users", uid, map[string]interface{}{
			"settings": map[string]interface{}{"nickName": "nick-" + uid},
		})
		env.put(t, "photos", "owned-"+strconv.Itoa(i), map[string]interface{}{
			"uid": uid, "date": testNow.Add(-time.Duration(2*i) * time.Minute),
		})
		env.put(t, "photos", "anon-"+strconv.Itoa(i), map[string]interface{}{
			"uid": "", "date": testNow.Add(-time.Duration(2*i+1) * time.Minute),
		})
	}
	svc := NewFeedService(env.photos, env.users, time.UTC, 8, func() time.Time { return testNow }, env.logger)

	for run := 0; run < 20; run++ {
		feed, err := svc.ListFeed(context.Background())
		require.NoError(t, err)
		require.Len(t, feed, 100)
		for i, item := range feed {
			if i%2 == 0 {
				assert.Equal(t, "nick-u"+strconv.Itoa(i/2), item.NickName)
			} else {
				assert.Equal(t, UnknownNickName, item.NickName)
			}
		}
	}
}

func TestListFeedEmpty(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFeedService(env.photos, env.users, time.UTC, 1, nil, env.logger)

	feed, err := svc.ListFeed(context.Background())
	require.NoError(t, err)
	assert.Empty(t, feed)
}

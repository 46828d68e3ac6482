package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFixture = `
collections:
  photos:
    p1:
      uid: u1
      url: https://example.com/p1.jpg
      fav: 2
      date: "2024-04-30T10:00:00Z"
  users:
    u1:
      likes: [p1]
      settings:
        nickName: Alice
        timeTable:
          "0": [true, false, false]
      form:
        1: false
`

func TestParseFixtureAndSeed(t *testing.T) {
	f, err := ParseFixture([]byte(testFixture))
	require.NoError(t, err)
	require.Contains(t, f.Collections, "photos")

	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, f.Seed(ctx, s))

	doc, err := s.Get(ctx, "photos", "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), doc.Data["fav"])
	assert.Equal(t, time.Date(2024, 4, 30, 10, 0, 0, 0, time.UTC), doc.Data["date"])

	users := NewUserRepository(s)
	u, err := users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, u.Likes)
	assert.Equal(t, "Alice", u.Settings.NickName)
	assert.Equal(t, []bool{true, false, false}, u.Settings.TimeTable["0"])
	assert.Equal(t, map[string]bool{"1": false}, u.Form)
}

func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testFixture), 0o600))

	f, err := LoadFixture(path)
	require.NoError(t, err)
	assert.Len(t, f.Collections, 2)

	_, err = LoadFixture(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = ParseFixture([]byte("collections: [not, a, map]"))
	assert.Error(t, err)
}

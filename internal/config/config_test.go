package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("FIREBASE_PROJECT_ID", "demo-project")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreFirestore, cfg.StoreBackend)
	assert.Equal(t, "session", cfg.SessionCookieName)
	assert.Equal(t, "Asia/Tokyo", cfg.DisplayTimezone)
	assert.Equal(t, 8, cfg.FeedLookupConcurrency)
	assert.Equal(t, "activity", cfg.AMQPQueue)
	assert.True(t, cfg.IsRelease())
}

func TestLoadConfig_FirestoreRequiresProject(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("STORE_BACKEND", "firestore")
	t.Setenv("FIREBASE_PROJECT_ID", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "FIREBASE_PROJECT_ID")
}

func TestLoadConfig_MemoryBackend(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("STORE_BACKEND", "Memory")
	t.Setenv("FIREBASE_PROJECT_ID", "")
	t.Setenv("PORT", "9090")
	t.Setenv("FEED_LOOKUP_CONCURRENCY", "2")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.StoreBackend)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2, cfg.FeedLookupConcurrency)
}

func TestLoadConfig_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("STORE_BACKEND", "postgres")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "STORE_BACKEND")
}

func TestLoadConfig_RejectsBadTimezone(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("DISPLAY_TIMEZONE", "Mars/Olympus")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "DISPLAY_TIMEZONE")
}

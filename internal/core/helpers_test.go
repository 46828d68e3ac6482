package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/eventapp/internal/db"
	"github.com/example/eventapp/internal/events"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	store     *db.MemoryStore
	users     db.UserRepository
	photos    db.PhotoRepository
	programs  db.ProgramRepository
	places    db.PlaceRepository
	qrs       db.QRRepository
	mode      db.ModeRepository
	logs      db.LogRepository
	sigs      db.SignatureRepository
	publisher *events.Recorder
	logger    *zap.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := db.NewMemoryStore()
	store.SetClock(func() time.Time { return testNow })
	return &testEnv{
		store:     store,
		users:     db.NewUserRepository(store),
		photos:    db.NewPhotoRepository(store),
		programs:  db.NewProgramRepository(store),
		places:    db.NewPlaceRepository(store),
		qrs:       db.NewQRRepository(store),
		mode:      db.NewModeRepository(store),
		logs:      db.NewLogRepository(store),
		sigs:      db.NewSignatureRepository(store),
		publisher: &events.Recorder{},
		logger:    zap.NewNop(),
	}
}

func (e *testEnv) put(t *testing.T, collection, id string, data map[string]interface{}) {
	t.Helper()
	require.NoError(t, e.store.Set(context.Background(), collection, id, data))
}

func (e *testEnv) get(t *testing.T, collection, id string) map[string]interface{} {
	t.Helper()
	doc, err := e.store.Get(context.Background(), collection, id)
	require.NoError(t, err)
	return doc.Data
}

// failingStore fails every write and optionally every read.
type failingStore struct {
	*db.MemoryStore
	failReads bool
}

func (s *failingStore) Get(ctx context.Context, collection, id string) (*db.Document, error) {
	if s.failReads {
		return nil, errStore
	}
	return s.MemoryStore.Get(ctx, collection, id)
}

func (s *failingStore) List(ctx context.Context, collection string, q db.Query) ([]*db.Document, error) {
	if s.failReads {
		return nil, errStore
	}
	return s.MemoryStore.List(ctx, collection, q)
}

func (s *failingStore) Set(context.Context, string, string, map[string]interface{}) error {
	return errStore
}

func (s *failingStore) Merge(context.Context, string, string, map[string]interface{}) error {
	return errStore
}

func (s *failingStore) Update(context.Context, string, string, string, interface{}) error {
	return errStore
}

func (s *failingStore) Add(context.Context, string, map[string]interface{}) (string, error) {
	return "", errStore
}

var errStore = errors.New("store unavailable")

package db

import (
	"context"
	"errors"

	"github.com/example/eventapp/internal/models"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// Direction orders query results.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Filter is an equality predicate on a top-level field.
type Filter struct {
	Field string
	Value interface{}
}

// Query narrows a collection listing. The zero Query lists every document in
// the store's default order.
type Query struct {
	Where     []Filter
	OrderBy   string
	Direction Direction
}

// Document is a raw document read from a collection.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// DataTo decodes the document into v using firestore field tags.
func (d *Document) DataTo(v interface{}) error {
	return DataTo(d.Data, v)
}

type serverTimestamp struct{}

// ServerTimestamp, used as a field value in a write, is replaced by the
// store's commit time.
var ServerTimestamp interface{} = serverTimestamp{}

// Store is the document database capability every repository is built on.
type Store interface {
	Get(ctx context.Context, collection, id string) (*Document, error)
	List(ctx context.Context, collection string, q Query) ([]*Document, error)
	// Set overwrites the whole document.
	Set(ctx context.Context, collection, id string, data map[string]interface{}) error
	// Merge writes the given fields, keeping every field it does not name.
	// Nested maps are merged, other values replaced. Missing documents are created.
	Merge(ctx context.Context, collection, id string, data map[string]interface{}) error
	// Update replaces one top-level field of an existing document.
	Update(ctx context.Context, collection, id, field string, value interface{}) error
	// Add creates a document with a store-assigned ID.
	Add(ctx context.Context, collection string, data map[string]interface{}) (string, error)
	Close() error
}

// UserRepository defines storage operations on user documents.
type UserRepository interface {
	GetByID(ctx context.Context, uid string) (*models.User, error)
	// Replace overwrites the user's document with u.
	Replace(ctx context.Context, u *models.User) error
	MergeLikes(ctx context.Context, uid string, likes []string) error
	MergeCheckins(ctx context.Context, uid string, programIDs []string) error
	MergeReward(ctx context.Context, uid string, reward, prevReward int64) error
	MergeSettings(ctx context.Context, uid string, settings models.Settings) error
}

// PhotoRepository defines storage operations on photo documents.
type PhotoRepository interface {
	ListNewestFirst(ctx context.Context) ([]*models.Photo, error)
	UpdateFav(ctx context.Context, photoID string, fav int64) error
}

// ProgramRepository reads program documents.
type ProgramRepository interface {
	GetByID(ctx context.Context, programID string) (*models.Program, error)
	ListOpen(ctx context.Context) ([]*models.Program, error)
}

// PlaceRepository reads place documents.
type PlaceRepository interface {
	GetByID(ctx context.Context, placeID string) (*models.Place, error)
	List(ctx context.Context) ([]*models.Place, error)
}

// QRRepository reads QR documents.
type QRRepository interface {
	GetByID(ctx context.Context, qrID string) (*models.QRInfo, error)
}

// ModeRepository reads the global deployment mode.
type ModeRepository interface {
	Get(ctx context.Context) (*models.Mode, error)
}

// LogRepository appends activity logs.
type LogRepository interface {
	Create(ctx context.Context, entry models.ActivityLog) (string, error)
}

// SignatureRepository appends signatures.
type SignatureRepository interface {
	Create(ctx context.Context, sig models.Signature) (string, error)
}

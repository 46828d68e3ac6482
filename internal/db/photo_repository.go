package db

import (
	"context"
	"fmt"

	"github.com/example/eventapp/internal/models"
)

const photosCollection = "photos"

type photoRepository struct {
	store Store
}

// NewPhotoRepository creates a PhotoRepository on store.
func NewPhotoRepository(store Store) PhotoRepository {
	return &photoRepository{store: store}
}

// ListNewestFirst returns every photo ordered by date, newest first.
func (r *photoRepository) ListNewestFirst(ctx context.Context) ([]*models.Photo, error) {
	docs, err := r.store.List(ctx, photosCollection, Query{OrderBy: "date", Direction: Desc})
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	photos := make([]*models.Photo, 0, len(docs))
	for _, doc := range docs {
		var p models.Photo
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("failed to decode photo data for ID '%s': %w", doc.ID, err)
		}
		p.ID = doc.ID
		photos = append(photos, &p)
	}
	return photos, nil
}

// UpdateFav overwrites the fav field of an existing photo.
func (r *photoRepository) UpdateFav(ctx context.Context, photoID string, fav int64) error {
	if err := r.store.Update(ctx, photosCollection, photoID, "fav", fav); err != nil {
		return fmt.Errorf("failed to update fav of photo '%s': %w", photoID, err)
	}
	return nil
}

package db

import (
	"context"
	"fmt"

	"github.com/example/eventapp/internal/models"
)

const (
	logsCollection       = "logs"
	signaturesCollection = "signature"
)

type logRepository struct {
	store Store
}

// NewLogRepository creates a LogRepository on store.
func NewLogRepository(store Store) LogRepository {
	return &logRepository{store: store}
}

// Create appends entry; its date is the server commit time.
func (r *logRepository) Create(ctx context.Context, entry models.ActivityLog) (string, error) {
	id, err := r.store.Add(ctx, logsCollection, map[string]interface{}{
		"title": entry.Title,
		"place": entry.Place,
		"state": entry.State,
		"date":  ServerTimestamp,
		"uid":   entry.UID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create log: %w", err)
	}
	return id, nil
}

type signatureRepository struct {
	store Store
}

// NewSignatureRepository creates a SignatureRepository on store.
func NewSignatureRepository(store Store) SignatureRepository {
	return &signatureRepository{store: store}
}

// Create appends sig; its date is the server commit time.
func (r *signatureRepository) Create(ctx context.Context, sig models.Signature) (string, error) {
	id, err := r.store.Add(ctx, signaturesCollection, map[string]interface{}{
		"sign": sig.Sign,
		"date": ServerTimestamp,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create signature: %w", err)
	}
	return id, nil
}

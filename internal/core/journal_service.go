package core

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/eventapp/internal/db"
	"github.com/example/eventapp/internal/events"
	"github.com/example/eventapp/internal/models"
)

type journalService struct {
	logs       db.LogRepository
	signatures db.SignatureRepository
	publisher  events.Publisher
	logger     *zap.Logger
}

// NewJournalService creates a JournalService.
func NewJournalService(logs db.LogRepository, signatures db.SignatureRepository, publisher events.Publisher, logger *zap.Logger) JournalService {
	return &journalService{logs: logs, signatures: signatures, publisher: publisher, logger: logger}
}

// PostLog appends an activity log for the caller and returns its ID.
func (s *journalService) PostLog(ctx context.Context, uid string, req models.LogRequest) (string, error) {
	if uid == "" {
		return "", ErrUnauthenticated
	}
	id, err := s.logs.Create(ctx, models.ActivityLog{
		Title: req.Title,
		Place: req.Place,
		State: req.State,
		UID:   uid,
	})
	if err != nil {
		return "", err
	}
	notify(ctx, s.publisher, s.logger, events.LogCreated, uid, req.Title)
	return id, nil
}

func (s *journalService) PostSignature(ctx context.Context, sign string) string {
	id, err := s.signatures.Create(ctx, models.Signature{Sign: sign})
	if err != nil {
		s.logger.Error("Failed to store signature", zap.Error(err))
		return ""
	}
	return id
}

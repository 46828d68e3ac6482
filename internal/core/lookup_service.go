package core

import (
	"context"
	"errors"

	"github.com/example/eventapp/internal/db"
	"github.com/example/eventapp/internal/models"
)

type lookupService struct {
	qrs      db.QRRepository
	programs db.ProgramRepository
	places   db.PlaceRepository
	mode     db.ModeRepository
	users    db.UserRepository
}

// NewLookupService creates a LookupService.
func NewLookupService(qrs db.QRRepository, programs db.ProgramRepository, places db.PlaceRepository, mode db.ModeRepository, users db.UserRepository) LookupService {
	return &lookupService{qrs: qrs, programs: programs, places: places, mode: mode, users: users}
}

func (s *lookupService) FetchQRInfo(ctx context.Context, qrID string) (*models.QRInfo, error) {
	return s.qrs.GetByID(ctx, qrID)
}

func (s *lookupService) FetchProgramInfo(ctx context.Context, programID string) (*models.Program, error) {
	return s.programs.GetByID(ctx, programID)
}

func (s *lookupService) FetchPlace(ctx context.Context, placeID string) (*models.Place, error) {
	return s.places.GetByID(ctx, placeID)
}

func (s *lookupService) ListPlaces(ctx context.Context) ([]*models.Place, error) {
	return s.places.List(ctx)
}

// FetchMode combines the global mode flag with the user's own dev flag.
func (s *lookupService) FetchMode(ctx context.Context, uid string) (*models.ModeInfo, error) {
	mode, err := s.mode.Get(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, userNotFound(uid, err)
		}
		return nil, err
	}
	return &models.ModeInfo{WebMode: mode.Dev, UserMode: user.Dev}, nil
}

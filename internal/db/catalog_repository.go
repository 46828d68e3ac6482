package db

import (
	"context"
	"fmt"

	"github.com/example/eventapp/internal/models"
)

const (
	programsCollection = "program"
	placesCollection   = "place"
	qrCollection       = "QR"
	modeCollection     = "mode"
	modeDocument       = "mode"
)

type programRepository struct {
	store Store
}

// NewProgramRepository creates a ProgramRepository on store.
func NewProgramRepository(store Store) ProgramRepository {
	return &programRepository{store: store}
}

func toProgram(doc *Document) *models.Program {
	isOpen, _ := doc.Data["isOpen"].(bool)
	return &models.Program{ID: doc.ID, IsOpen: isOpen, Data: doc.Data}
}

func (r *programRepository) GetByID(ctx context.Context, programID string) (*models.Program, error) {
	doc, err := r.store.Get(ctx, programsCollection, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to get program '%s': %w", programID, err)
	}
	return toProgram(doc), nil
}

// ListOpen returns programs whose isOpen flag is true, in store order.
func (r *programRepository) ListOpen(ctx context.Context) ([]*models.Program, error) {
	docs, err := r.store.List(ctx, programsCollection, Query{Where: []Filter{{Field: "isOpen", Value: true}}})
	if err != nil {
		return nil, fmt.Errorf("failed to list open programs: %w", err)
	}
	programs := make([]*models.Program, 0, len(docs))
	for _, doc := range docs {
		programs = append(programs, toProgram(doc))
	}
	return programs, nil
}

type placeRepository struct {
	store Store
}

// NewPlaceRepository creates a PlaceRepository on store.
func NewPlaceRepository(store Store) PlaceRepository {
	return &placeRepository{store: store}
}

func toPlace(doc *Document) (*models.Place, error) {
	var p models.Place
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to decode place data for ID '%s': %w", doc.ID, err)
	}
	p.ID = doc.ID
	return &p, nil
}

func (r *placeRepository) GetByID(ctx context.Context, placeID string) (*models.Place, error) {
	doc, err := r.store.Get(ctx, placesCollection, placeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get place '%s': %w", placeID, err)
	}
	return toPlace(doc)
}

func (r *placeRepository) List(ctx context.Context) ([]*models.Place, error) {
	docs, err := r.store.List(ctx, placesCollection, Query{})
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	places := make([]*models.Place, 0, len(docs))
	for _, doc := range docs {
		p, err := toPlace(doc)
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	return places, nil
}

type qrRepository struct {
	store Store
}

// NewQRRepository creates a QRRepository on store.
func NewQRRepository(store Store) QRRepository {
	return &qrRepository{store: store}
}

func (r *qrRepository) GetByID(ctx context.Context, qrID string) (*models.QRInfo, error) {
	doc, err := r.store.Get(ctx, qrCollection, qrID)
	if err != nil {
		return nil, fmt.Errorf("failed to get QR '%s': %w", qrID, err)
	}
	return &models.QRInfo{ID: doc.ID, Data: doc.Data}, nil
}

type modeRepository struct {
	store Store
}

// NewModeRepository creates a ModeRepository on store.
func NewModeRepository(store Store) ModeRepository {
	return &modeRepository{store: store}
}

func (r *modeRepository) Get(ctx context.Context) (*models.Mode, error) {
	doc, err := r.store.Get(ctx, modeCollection, modeDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to get mode: %w", err)
	}
	var m models.Mode
	if err := doc.DataTo(&m); err != nil {
		return nil, fmt.Errorf("failed to decode mode: %w", err)
	}
	return &m, nil
}

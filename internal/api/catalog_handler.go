package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/eventapp/internal/core"
)

// CatalogHandler serves read-only program, place, QR and mode lookups.
type CatalogHandler struct {
	lookups  core.LookupService
	checkins core.CheckinService
	logger   *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(lookups core.LookupService, checkins core.CheckinService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{lookups: lookups, checkins: checkins, logger: logger}
}

func (h *CatalogHandler) ListOpenPrograms(c *gin.Context) {
	programs, err := h.checkins.ListOpenPrograms(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, programs)
}

func (h *CatalogHandler) GetProgram(c *gin.Context) {
	program, err := h.lookups.FetchProgramInfo(c.Request.Context(), c.Param("programId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, program)
}

func (h *CatalogHandler) GetQR(c *gin.Context) {
	qr, err := h.lookups.FetchQRInfo(c.Request.Context(), c.Param("qrId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, qr)
}

func (h *CatalogHandler) ListPlaces(c *gin.Context) {
	places, err := h.lookups.ListPlaces(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, places)
}

func (h *CatalogHandler) GetPlace(c *gin.Context) {
	place, err := h.lookups.FetchPlace(c.Request.Context(), c.Param("placeId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, place)
}

// GetMode handles GET /mode/:uid.
func (h *CatalogHandler) GetMode(c *gin.Context) {
	mode, err := h.lookups.FetchMode(c.Request.Context(), c.Param("uid"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, mode)
}

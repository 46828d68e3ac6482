package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/eventapp/internal/core"
	"github.com/example/eventapp/internal/middleware"
	"github.com/example/eventapp/internal/models"
)

// JournalHandler appends activity logs and signatures.
type JournalHandler struct {
	journal core.JournalService
	logger  *zap.Logger
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(journal core.JournalService, logger *zap.Logger) *JournalHandler {
	return &JournalHandler{journal: journal, logger: logger}
}

// PostLog handles POST /logs. Store failures surface as 500.
func (h *JournalHandler) PostLog(c *gin.Context) {
	var req models.LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	id, err := h.journal.PostLog(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, IDResponse{ID: id})
}

// PostSignature handles POST /signatures.
func (h *JournalHandler) PostSignature(c *gin.Context) {
	var req models.SignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	id := h.journal.PostSignature(c.Request.Context(), req.Sign)
	if id == "" {
		respondFailure(c, "failed to store signature")
		return
	}
	respondOK(c, IDResponse{ID: id})
}

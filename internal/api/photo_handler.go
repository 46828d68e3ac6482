package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/eventapp/internal/core"
	"github.com/example/eventapp/internal/models"
)

// PhotoHandler serves the photo feed.
type PhotoHandler struct {
	feed   core.FeedService
	likes  core.LikeService
	logger *zap.Logger
}

// NewPhotoHandler creates a new PhotoHandler.
func NewPhotoHandler(feed core.FeedService, likes core.LikeService, logger *zap.Logger) *PhotoHandler {
	return &PhotoHandler{feed: feed, likes: likes, logger: logger}
}

// ListFeed handles GET /photos.
func (h *PhotoHandler) ListFeed(c *gin.Context) {
	feed, err := h.feed.ListFeed(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, feed)
}

// SetFavoriteCount handles PATCH /photos/:photoId/fav. Write failures are
// reported as ok false.
func (h *PhotoHandler) SetFavoriteCount(c *gin.Context) {
	var req models.FavRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	photoID := c.Param("photoId")
	if err := h.likes.SetFavoriteCount(c.Request.Context(), photoID, *req.Fav); err != nil {
		h.logger.Warn("Failed to update favorite count", zap.String("photoId", photoID), zap.Error(err))
		respondFailure(c, "failed to update favorite count")
		return
	}
	respondOK(c, nil)
}

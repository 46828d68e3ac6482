package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/eventapp/internal/core"
	"github.com/example/eventapp/internal/middleware"
	"github.com/example/eventapp/internal/models"
)

// UserHandler serves the caller's own user record.
type UserHandler struct {
	users    core.UserService
	likes    core.LikeService
	settings core.SettingsService
	rewards  core.RewardService
	checkins core.CheckinService
	logger   *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users core.UserService, likes core.LikeService, settings core.SettingsService, rewards core.RewardService, checkins core.CheckinService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		users:    users,
		likes:    likes,
		settings: settings,
		rewards:  rewards,
		checkins: checkins,
		logger:   logger,
	}
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	user, err := h.users.CreateUserRecord(c.Request.Context(), middleware.UserID(c), req.NickName)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.logger.Info("User record created", zap.String("uid", user.ID))
	respondOK(c, user)
}

// FetchLikes handles GET /users/me/likes.
func (h *UserHandler) FetchLikes(c *gin.Context) {
	likes, err := h.likes.FetchLikes(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, likes)
}

// SetLikes handles PUT /users/me/likes. Write failures are reported as ok
// false.
func (h *UserHandler) SetLikes(c *gin.Context) {
	var req models.LikesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	uid := middleware.UserID(c)
	if err := h.likes.SetLikes(c.Request.Context(), uid, req.Likes); err != nil {
		h.logger.Warn("Failed to set likes", zap.String("uid", uid), zap.Error(err))
		respondFailure(c, "failed to save likes")
		return
	}
	respondOK(c, nil)
}

// FetchSettings handles GET /users/me/settings.
func (h *UserHandler) FetchSettings(c *gin.Context) {
	settings, err := h.settings.FetchSettings(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, settings)
}

// UpdateSettings handles POST /users/me/settings with a form body.
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	var form models.SettingsForm
	if err := c.ShouldBind(&form); err != nil {
		respondBadRequest(c, err)
		return
	}
	msg, err := h.settings.UpdateSettings(c.Request.Context(), middleware.UserID(c), form)
	if err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) || errors.Is(err, core.ErrUnauthenticated) {
			respondError(c, h.logger, err)
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, Result{Message: msg})
		return
	}
	c.JSON(http.StatusOK, Result{OK: true, Message: msg})
}

// FetchReward handles GET /users/me/reward.
func (h *UserHandler) FetchReward(c *gin.Context) {
	reward, err := h.rewards.FetchReward(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, RewardResponse{Reward: reward})
}

// ApplyReward handles POST /users/me/reward.
func (h *UserHandler) ApplyReward(c *gin.Context) {
	var req models.RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	reward, err := h.rewards.ApplyReward(c.Request.Context(), middleware.UserID(c), int64(req.Delta))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, RewardResponse{Reward: reward})
}

// ListCheckins handles GET /users/me/checkins.
func (h *UserHandler) ListCheckins(c *gin.Context) {
	list, err := h.checkins.ListCheckins(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, list)
}

// Checkin handles POST /users/me/checkins/:programId.
func (h *UserHandler) Checkin(c *gin.Context) {
	list, err := h.checkins.Checkin(c.Request.Context(), middleware.UserID(c), c.Param("programId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, list)
}

// Checkout handles DELETE /users/me/checkins/:programId.
func (h *UserHandler) Checkout(c *gin.Context) {
	list, err := h.checkins.Checkout(c.Request.Context(), middleware.UserID(c), c.Param("programId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, list)
}

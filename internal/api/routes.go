package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/eventapp/internal/core"
	"github.com/example/eventapp/internal/middleware"
)

// Services bundles the core services the handlers depend on.
type Services struct {
	Feed     core.FeedService
	Likes    core.LikeService
	Checkins core.CheckinService
	Rewards  core.RewardService
	Settings core.SettingsService
	Users    core.UserService
	Lookups  core.LookupService
	Journal  core.JournalService
}

// SetupRoutes registers /health and the /api/v1 routes. Global middleware
// (logging, recovery, CORS) is expected on router already.
func SetupRoutes(router *gin.Engine, authMW *middleware.AuthMiddleware, logger *zap.Logger, svc Services) {
	photoHandler := NewPhotoHandler(svc.Feed, svc.Likes, logger)
	userHandler := NewUserHandler(svc.Users, svc.Likes, svc.Settings, svc.Rewards, svc.Checkins, logger)
	catalogHandler := NewCatalogHandler(svc.Lookups, svc.Checkins, logger)
	journalHandler := NewJournalHandler(svc.Journal, logger)

	apiV1 := router.Group("/api/v1")
	{
		photos := apiV1.Group("/photos")
		{
			photos.GET("", photoHandler.ListFeed)
			photos.PATCH("/:photoId/fav", photoHandler.SetFavoriteCount)
		}

		apiV1.POST("/users", authMW.RequireAuth(), userHandler.CreateUser)

		me := apiV1.Group("/users/me", authMW.Identify())
		{
			me.GET("/likes", userHandler.FetchLikes)
			me.PUT("/likes", userHandler.SetLikes)
			me.GET("/settings", userHandler.FetchSettings)
			me.POST("/settings", authMW.RequireAuth(), userHandler.UpdateSettings)
			me.GET("/reward", userHandler.FetchReward)
			me.POST("/reward", userHandler.ApplyReward)
			me.GET("/checkins", userHandler.ListCheckins)
			me.POST("/checkins/:programId", userHandler.Checkin)
			me.DELETE("/checkins/:programId", userHandler.Checkout)
		}

		programs := apiV1.Group("/programs")
		{
			programs.GET("/open", catalogHandler.ListOpenPrograms)
			programs.GET("/:programId", catalogHandler.GetProgram)
		}

		apiV1.GET("/qr/:qrId", catalogHandler.GetQR)
		apiV1.GET("/places", catalogHandler.ListPlaces)
		apiV1.GET("/places/:placeId", catalogHandler.GetPlace)
		apiV1.GET("/mode/:uid", catalogHandler.GetMode)

		apiV1.POST("/logs", authMW.RequireAuth(), journalHandler.PostLog)
		apiV1.POST("/signatures", journalHandler.PostSignature)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{Status: "UP"})
	})

	logger.Info("API routes configured under /api/v1 and /health")
}

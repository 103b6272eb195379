package route

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bingelog/bingelog-backend/api/controller"
	"github.com/bingelog/bingelog-backend/bootstrap"
	"github.com/bingelog/bingelog-backend/domain"
	"github.com/bingelog/bingelog-backend/metadata"
	"github.com/bingelog/bingelog-backend/mongo"
	"github.com/bingelog/bingelog-backend/repository"
	"github.com/bingelog/bingelog-backend/usecase"
)

func NewFeedRouter(app *bootstrap.Application, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	graphRepo := repository.NewGraphRepository(db, domain.CollectionSocialFollows)
	preferenceRepo := repository.NewPreferenceRepository(db, domain.CollectionUserPreferences)
	postRepo := repository.NewPostRepository(db, domain.CollectionPosts)
	engagementRepo := repository.NewEngagementRepository(db, domain.CollectionPostEngagement)
	scoreRepo := repository.NewFeedScoreRepository(db, domain.CollectionFeedScores)

	refreshUsecase := usecase.NewFeedRefreshUsecase(
		graphRepo,
		preferenceRepo,
		postRepo,
		engagementRepo,
		scoreRepo,
		app.Logger,
		app.Metrics,
		timeout,
	)
	readUsecase := usecase.NewFeedReadUsecase(scoreRepo, timeout)

	var metadataClient *metadata.Client
	if app.Env.MetadataAPIURL != "" {
		tokens := metadata.NewTokenCache(
			metadata.APIKeyTokenSource(app.Env.MetadataAPIURL, app.Env.MetadataAPIKey, &http.Client{Timeout: 10 * time.Second}),
			30*time.Second,
		)
		metadataClient = metadata.NewClient(app.Env.MetadataAPIURL, tokens)
	}

	feedCtrl := controller.NewFeedController(refreshUsecase, readUsecase, metadataClient, app.Logger)

	feedGroup := group.Group("/feed")
	{
		// POST /feed/refresh {"user_id": "..."}
		feedGroup.POST("/refresh", feedCtrl.Refresh)

		// GET /feed/:userId?limit=50&enrich=true
		feedGroup.GET("/:userId", feedCtrl.TopScores)
	}
}

package route

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bingelog/bingelog-backend/api/middleware"
	"github.com/bingelog/bingelog-backend/bootstrap"
	"github.com/bingelog/bingelog-backend/mongo"
)

func Setup(app *bootstrap.Application, timeout time.Duration, db mongo.Database, engine *gin.Engine) {
	engine.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiRouter := engine.Group("/api")
	if app.Env.AccessTokenSecret != "" {
		apiRouter.Use(middleware.JwtAuthMiddleware(app.Env.AccessTokenSecret))
	}
	NewFeedRouter(app, timeout, db, apiRouter)
}

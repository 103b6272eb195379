package main

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bingelog/bingelog-backend/api/route"
	"github.com/bingelog/bingelog-backend/bootstrap"
	"github.com/bingelog/bingelog-backend/mongo"
)

func main() {
	app := bootstrap.App()
	env := app.Env

	db := app.Mongo.Database(env.DBName)
	defer app.CloseDBConnection()

	mongo.CreateIndexes(db)

	timeout := time.Duration(env.ContextTimeout) * time.Second

	engine := gin.Default()

	route.Setup(&app, timeout, db, engine)

	if err := engine.Run(env.ServerAddress); err != nil {
		app.Logger.WithError(err).Fatal("server stopped")
	}
}

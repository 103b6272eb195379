package bootstrap

import (
	"github.com/sirupsen/logrus"

	"github.com/bingelog/bingelog-backend/logging"
	"github.com/bingelog/bingelog-backend/mongo"
	"github.com/bingelog/bingelog-backend/monitoring"
)

type Application struct {
	Env     *Env
	Mongo   mongo.Client
	Logger  *logrus.Logger
	Metrics *monitoring.Metrics
}

func App() Application {
	app := &Application{}
	app.Env = NewEnv()
	app.Logger = logging.NewLoggerWithService("feed-ranking")
	app.Mongo = NewMongoDatabase(app.Env)
	app.Metrics = monitoring.NewMetrics()
	return *app
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
}

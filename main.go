package main

import (
	"github.com/sirupsen/logrus"

	"github.com/kubera-dev/kubera-server/api"
	"github.com/kubera-dev/kubera-server/internal/config"
	"github.com/kubera-dev/kubera-server/internal/logging"
	"github.com/kubera-dev/kubera-server/internal/migrations"
	"github.com/kubera-dev/kubera-server/internal/service"
	"github.com/kubera-dev/kubera-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("kubera-server starting")

	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}

	dbStorage, err := storage.Open(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("storage.Open")
		return
	}
	defer dbStorage.Close()

	// The database is an embedded SQLite file, so the server owns its schema.
	if err := migrations.Up(dbStorage.DB); err != nil {
		logrus.WithError(err).Fatal("migrations.Up")
		return
	}

	svc := service.NewService(dbStorage)

	httpRest := api.Rest{
		Logger:  logger,
		Config:  cfg,
		Service: svc,
	}
	if err := httpRest.Serve(); err != nil {
		logrus.WithError(err).Fatal("api.Rest.Serve")
	}
}

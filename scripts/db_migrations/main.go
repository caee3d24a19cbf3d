package main

import (
	"database/sql"
	"errors"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/kubera-dev/kubera-server/internal/config"
	"github.com/kubera-dev/kubera-server/internal/migrations"
	"github.com/kubera-dev/kubera-server/internal/storage"
)

func main() {
	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}

	db, err := sql.Open("sqlite", storage.DSN(cfg.DBPath))
	if err != nil {
		logrus.WithError(err).Fatal("sql.Open")
		return
	}
	defer db.Close()

	m, err := migrations.New(db)
	if err != nil {
		logrus.WithError(err).Fatal("migrations.New")
		return
	}

	preMigrationVersion, err := currentVersion(m)
	if err != nil {
		logrus.WithError(err).Fatal("m.Version.preMigrationVersion")
		return
	}

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "version":
		// Versions are logged below.
	default:
		logrus.Fatalf("unknown command %q, expected up, down or version", command)
		return
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logrus.WithError(err).Fatal(command)
		return
	}

	postMigrationVersion, err := currentVersion(m)
	if err != nil {
		logrus.WithError(err).Fatal("m.Version.postMigrationVersion")
		return
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
	}).Info("Migration status")
}

func currentVersion(m *migrate.Migrate) (uint, error) {
	version, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return version, nil
}

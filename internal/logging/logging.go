package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging builds the process logger: JSON entries on stdout at Info
// level. The default logrus "level" key is renamed so log pipelines do not
// confuse it with request data.
func SetupLogging() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: logrus.InfoLevel,
	}

	return &logger
}

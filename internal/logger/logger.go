package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Init configures the shared structured logger.
func Init(level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "ts",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return l
}

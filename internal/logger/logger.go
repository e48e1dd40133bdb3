package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
	// Stderr keeps log lines out of stdout, which is reserved for data
	// output in silent mode.
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	log.SetLevel(logrus.InfoLevel)
}

// Quiet drops everything below error level; used by --silent.
func Quiet() {
	log.SetLevel(logrus.ErrorLevel)
}

// GetLogger returns the shared logger instance.
func GetLogger() *logrus.Logger {
	return log
}

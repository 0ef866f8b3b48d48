package commands

import (
	"io"

	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/sirupsen/logrus"
)

// logrusLogger adapts logrus to wp.Logger.
type logrusLogger struct {
	logger *logrus.Logger
}

// newLogger logs to w at debug level when verbose, warnings only otherwise.
func newLogger(w io.Writer, verbose bool) wp.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	return &logrusLogger{logger: logger}
}

func (l *logrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Warn(msg)
}

func (l *logrusLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Error(msg)
}

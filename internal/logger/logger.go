// internal/logger/logger.go

package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var defaultLogger = logrus.New()

func init() {
	defaultLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	defaultLogger.SetOutput(os.Stdout)
	defaultLogger.SetLevel(logrus.InfoLevel)
}

// Setup applies the configured log level and, when file is non-empty,
// mirrors output into a size-rotated log file.
func Setup(level, file string) {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		defaultLogger.SetLevel(lvl)
	} else {
		defaultLogger.Warnf("unknown log level %q, keeping %s", level, defaultLogger.GetLevel())
	}

	if file != "" {
		rotated := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10,
			MaxBackups: 10,
			MaxAge:     30,
			Compress:   true,
		}
		defaultLogger.SetOutput(io.MultiWriter(os.Stdout, rotated))
	}
}

func Infof(format string, args ...any) {
	defaultLogger.Infof(format, args...)
}

func Warnf(format string, args ...any) {
	defaultLogger.Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	defaultLogger.Errorf(format, args...)
}

func Fatalf(format string, args ...any) {
	defaultLogger.Fatalf(format, args...)
}

func Debugf(format string, args ...any) {
	defaultLogger.Debugf(format, args...)
}

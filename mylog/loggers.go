package mylog

import (
	"os"

	"github.com/sirupsen/logrus"
)

const (
	PanicLevel = "panic"
	FatalLevel = "fatal"
	ErrorLevel = "error"
	WarnLevel  = "warn"
	InfoLevel  = "info"
	DebugLevel = "debug"
)

type MyLog struct {
	Logger *logrus.Logger
}

func convertLevel(level string) logrus.Level {
	switch level {
	case PanicLevel:
		return logrus.PanicLevel
	case FatalLevel:
		return logrus.FatalLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case WarnLevel:
		return logrus.WarnLevel
	case InfoLevel:
		return logrus.InfoLevel
	case DebugLevel:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

func NewMyLog(path string, level string, age uint32) (*MyLog, error) {
	logger, err := Init(path, level, age)
	if err != nil {
		return nil, err
	}
	return &MyLog{Logger: logger}, nil
}

// Init builds a logger printing to stdout and, when path is set, to daily rotated files kept for age days.
func Init(path string, level string, age uint32) (*logrus.Logger, error) {
	clog := logrus.New()
	clog.Out = os.Stdout
	clog.Formatter = &logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	}
	clog.Level = convertLevel(level)
	LoadFunctionHooker(clog)

	if path != "" {
		fileHooker, err := NewFileRotateHooker(path, age)
		if err != nil {
			return nil, err
		}
		clog.Hooks.Add(fileHooker)
	}
	return clog, nil
}

// Discard returns a logger that writes nothing, for tests and quiet tools.
func Discard() *logrus.Logger {
	clog := logrus.New()
	clog.Out = emptyWriter{}
	clog.Level = logrus.PanicLevel
	return clog
}

type emptyWriter struct{}

func (ew emptyWriter) Write(p []byte) (int, error) {
	return len(p), nil
}
